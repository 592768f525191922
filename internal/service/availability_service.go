package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"hris/backend/internal/dto"
	"hris/backend/internal/repository"
	"hris/backend/pkg/dateutil"
	"hris/backend/pkg/metrics"
	"hris/backend/pkg/redis"
)

// ── AvailabilityService 接口 ──────────────────────────────
//
// 设计说明：
//   - 这是 on-duty 看板的聚合引擎：一次"聚合趟"（pass）并发拉取
//     区间汇总、不可用记录、员工与客户花名册，再对每个客户扇出
//     KPI 查询，最终组合为单一只读快照。
//   - 汇总数字以数据层聚合为准，本层不从行数据重算，避免两套口径。
//   - 任何单项数据源失败只降级该区块（零值/空列表），不使整趟失败；
//     单客户 KPI 失败仅落为 {0,0}。
//   - 趟序号（passSeq）单调递增；过期趟的结果在落地时被静默丢弃，
//     保证快照永不混入被取代趟的数据。
// ─────────────────────────────────────────────────────────────

// AvailabilityService 可用性聚合业务接口
type AvailabilityService interface {
	// ComputeAvailabilityView 执行一次完整聚合趟
	ComputeAvailabilityView(ctx context.Context, req *dto.AvailabilityViewRequest) (*dto.AvailabilityViewResponse, error)
	// LatestSnapshot 返回最近一次成功落地的聚合快照；尚无快照时返回 nil
	LatestSnapshot() *dto.AvailabilityViewResponse
	// UnavailableReport 区间内不可用记录的展示行（不含汇总与 KPI）
	UnavailableReport(ctx context.Context, start, end string) ([]dto.DutyRow, error)
	// ClientVisitReport 单客户拜访报表
	ClientVisitReport(ctx context.Context, clientID, start, end string) (*dto.ClientVisitReportResponse, error)
}

type availabilityService struct {
	repo     *repository.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger

	// 趟守卫：passSeq 分配趟序号，snapshot 仅接受比 snapshotSeq 新的趟
	passSeq     atomic.Uint64
	mu          sync.Mutex
	snapshotSeq uint64
	snapshot    *dto.AvailabilityViewResponse
}

// NewAvailabilityService 创建 AvailabilityService 实例
// rdb 可为 nil（无缓存运行）；cacheTTL<=0 时关闭拜访报表缓存
func NewAvailabilityService(repo *repository.Repository, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:     repo,
		cache:    rdb,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ════════════════════════════════════════════════════════════
// ComputeAvailabilityView — 执行一次聚合趟
// ════════════════════════════════════════════════════════════
//
// 流程：
//   1. 归一化区间（end 缺省取 start）
//   2. 并发拉取：区间汇总 / 不可用记录 / 员工花名册 / 客户花名册
//   3. 构建展示行（见 buildDutyRows）
//   4. 客户 KPI 扇出（按输入顺序定位结果，见 clientKPIs）
//   5. 组合快照；仅当本趟仍是最新趟时落地

func (s *availabilityService) ComputeAvailabilityView(ctx context.Context, req *dto.AvailabilityViewRequest) (*dto.AvailabilityViewResponse, error) {
	start := sliceDate(req.StartDate)
	end := sliceDate(req.EndDate)
	if end == "" {
		end = start
	}

	seq := s.passSeq.Add(1)
	began := time.Now()
	metrics.AggregationPassesTotal.Inc()

	// ── 四项互不依赖的数据源并发拉取 ──
	var (
		summary   *repository.PeriodSummary
		records   []repository.UnavailableRecord
		employees map[string]string
		clients   []repository.ClientRef

		wg sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		result, err := s.repo.DutyAssignment.AvailabilitySummary(ctx, start, end)
		if err != nil {
			s.logger.Warn("区间汇总查询失败，降级为零值", zap.Error(err))
			metrics.SectionFailuresTotal.WithLabelValues("summary").Inc()
			return
		}
		summary = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.repo.DutyAssignment.ListUnavailableInRange(ctx, start, end)
		if err != nil {
			s.logger.Warn("不可用记录查询失败，降级为空列表", zap.Error(err))
			metrics.SectionFailuresTotal.WithLabelValues("records").Inc()
			return
		}
		records = result
	}()
	go func() {
		defer wg.Done()
		list, err := s.repo.Employee.List(ctx)
		if err != nil {
			s.logger.Warn("员工花名册查询失败，姓名回退停用", zap.Error(err))
			metrics.SectionFailuresTotal.WithLabelValues("employees").Inc()
			return
		}
		m := make(map[string]string, len(list))
		for _, e := range list {
			m[e.EmployeeID] = e.Name
		}
		employees = m
	}()
	go func() {
		defer wg.Done()
		list, err := s.repo.Client.List(ctx)
		if err != nil {
			s.logger.Warn("客户花名册查询失败，KPI 区块降级为空", zap.Error(err))
			metrics.SectionFailuresTotal.WithLabelValues("clients").Inc()
			return
		}
		refs := make([]repository.ClientRef, 0, len(list))
		for _, c := range list {
			refs = append(refs, repository.ClientRef{ID: c.ClientID, Name: c.Name})
		}
		clients = refs
	}()
	wg.Wait()

	// ── 组合 ──
	resp := &dto.AvailabilityViewResponse{
		Summary: dto.PeriodSummary{StartDate: start, EndDate: end},
		Rows:    buildDutyRows(records, employees),
		KPIs:    s.clientKPIs(ctx, clients, start, end),
	}
	if summary != nil {
		resp.Summary.TotalAssignments = summary.TotalAssignments
		resp.Summary.Available = summary.Available
		resp.Summary.Unavailable = summary.Unavailable
		resp.Summary.Unassigned = summary.Unassigned
	}
	if req.ClientID != "" {
		for i := range resp.KPIs {
			if resp.KPIs[i].ClientID == req.ClientID {
				resp.Selected = &resp.KPIs[i]
				break
			}
		}
		// 无匹配时 Selected 保持 nil（"无数据"而非错误）
	}

	s.publish(seq, resp)
	metrics.AggregationPassDuration.Observe(time.Since(began).Seconds())

	return resp, nil
}

// publish 落地快照；过期趟静默丢弃
func (s *availabilityService) publish(seq uint64, resp *dto.AvailabilityViewResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passSeq.Load() != seq || seq <= s.snapshotSeq {
		metrics.AggregationStalePassesTotal.Inc()
		s.logger.Debug("丢弃过期聚合趟结果", zap.Uint64("seq", seq), zap.Uint64("latest", s.passSeq.Load()))
		return
	}
	s.snapshotSeq = seq
	s.snapshot = resp
}

// LatestSnapshot 返回最近一次落地的快照
func (s *availabilityService) LatestSnapshot() *dto.AvailabilityViewResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// ════════════════════════════════════════════════════════════
// clientKPIs — 客户 KPI 扇出
// ════════════════════════════════════════════════════════════
//
// 每个客户一个 goroutine，结果按输入下标写入预分配切片：
// 完成顺序不泄漏到输出顺序；输出与输入客户一一对应、无缺项。
// 单客户查询失败落为 {0,0}，绝不使整趟失败。

func (s *availabilityService) clientKPIs(ctx context.Context, clients []repository.ClientRef, start, end string) []dto.ClientKPI {
	kpis := make([]dto.ClientKPI, len(clients))

	var wg sync.WaitGroup
	wg.Add(len(clients))
	for i, c := range clients {
		go func(i int, c repository.ClientRef) {
			defer wg.Done()
			kpi := dto.ClientKPI{ClientID: c.ID, ClientName: c.Name}
			report, err := s.visitReport(ctx, c.ID, start, end)
			if err != nil {
				s.logger.Warn("客户 KPI 查询失败，落为零值",
					zap.String("client_id", c.ID), zap.Error(err))
				metrics.ClientKPIFailuresTotal.Inc()
			} else {
				kpi.TotalAssignments = report.TotalAssignments
				kpi.UniqueEmployees = report.UniqueEmployees
			}
			kpis[i] = kpi
		}(i, c)
	}
	wg.Wait()

	return kpis
}

// visitReport 单客户拜访报表，带 Redis 读穿缓存；缓存故障静默回退数据库
func (s *availabilityService) visitReport(ctx context.Context, clientID, start, end string) (*repository.ClientVisitReport, error) {
	if s.cache != nil && s.cacheTTL > 0 {
		if cached, err := s.cache.GetVisitReport(ctx, clientID, start, end); err == nil && cached != nil {
			return &repository.ClientVisitReport{
				TotalAssignments: cached.TotalAssignments,
				UniqueEmployees:  cached.UniqueEmployees,
			}, nil
		}
	}

	report, err := s.repo.DutyAssignment.ClientVisitReport(ctx, clientID, start, end)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.SetVisitReport(ctx, clientID, start, end, &redis.VisitReport{
			TotalAssignments: report.TotalAssignments,
			UniqueEmployees:  report.UniqueEmployees,
		}, s.cacheTTL); err != nil {
			s.logger.Debug("拜访报表缓存写入失败", zap.Error(err))
		}
	}
	return report, nil
}

// ════════════════════════════════════════════════════════════
// UnavailableReport / ClientVisitReport — 独立报表入口
// ════════════════════════════════════════════════════════════

func (s *availabilityService) UnavailableReport(ctx context.Context, start, end string) ([]dto.DutyRow, error) {
	start = sliceDate(start)
	end = sliceDate(end)
	if end == "" {
		end = start
	}

	records, err := s.repo.DutyAssignment.ListUnavailableInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("不可用记录查询失败", zap.Error(err))
		return nil, err
	}

	employees, err := s.repo.Employee.List(ctx)
	nameByID := make(map[string]string, len(employees))
	if err != nil {
		s.logger.Warn("员工花名册查询失败，姓名回退停用", zap.Error(err))
	} else {
		for _, e := range employees {
			nameByID[e.EmployeeID] = e.Name
		}
	}

	return buildDutyRows(records, nameByID), nil
}

func (s *availabilityService) ClientVisitReport(ctx context.Context, clientID, start, end string) (*dto.ClientVisitReportResponse, error) {
	start = sliceDate(start)
	end = sliceDate(end)
	if end == "" {
		end = start
	}

	report, err := s.visitReport(ctx, clientID, start, end)
	if err != nil {
		s.logger.Error("客户拜访报表查询失败", zap.String("client_id", clientID), zap.Error(err))
		return nil, err
	}

	return &dto.ClientVisitReportResponse{
		TotalAssignments: report.TotalAssignments,
		UniqueEmployees:  report.UniqueEmployees,
		StartDate:        start,
		EndDate:          end,
	}, nil
}

// ════════════════════════════════════════════════════════════
// buildDutyRows — 展示行构建
// ════════════════════════════════════════════════════════════
//
// 按原始顺序逐条处理：
//   - 日期切为前 10 字符；结束日期缺省取开始日期
//   - 姓名回退链：记录自带 → 花名册查找 → "-"；客户名缺省 "-"
//   - 行 ID 合成为 <employeeID>-<下标>，仅单趟内唯一
//   - 工作日天数按 dateutil 计算；日期残缺的记录落为 0 天，不中断批次
// 构建后按开始日期降序排序（YYYY-MM-DD 字典序即时间序）；
// 展示规则：start==end 的行天数强制为 1（周末单日任务也算 1 天），
// 占位行恒为 0。

func buildDutyRows(records []repository.UnavailableRecord, nameByID map[string]string) []dto.DutyRow {
	rows := make([]dto.DutyRow, 0, len(records))

	for idx, rec := range records {
		start := sliceDate(rec.StartDate)
		end := rec.EndDate
		if end == "" {
			end = rec.StartDate
		}
		end = sliceDate(end)

		name := rec.EmployeeName
		if name == "" {
			name = nameByID[rec.EmployeeID]
		}
		if name == "" {
			name = "-"
		}

		client := rec.ClientName
		if client == "" {
			client = "-"
		}

		days := 0
		if start != "" && end != "" {
			days = dateutil.BusinessDaysInclusive(dateutil.Parse(start), dateutil.Parse(end))
		}

		rows = append(rows, applyDisplayDays(dto.DutyRow{
			ID:           fmt.Sprintf("%s-%d", rec.EmployeeID, idx),
			EmployeeID:   rec.EmployeeID,
			EmployeeName: name,
			Agenda:       rec.Agenda,
			StartDate:    start,
			EndDate:      end,
			ClientName:   client,
			Days:         days,
		}))
	}

	// 开始日期降序；同日行相对顺序不保证
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].StartDate > rows[j].StartDate
	})

	return rows
}

// applyDisplayDays 展示天数规则：占位行恒 0；单日任务强制 1
func applyDisplayDays(row dto.DutyRow) dto.DutyRow {
	if row.IsPlaceholder {
		row.Days = 0
		return row
	}
	if row.StartDate != "" && row.StartDate == row.EndDate {
		row.Days = 1
	}
	return row
}

// sliceDate 截取日期串的前 10 字符（YYYY-MM-DD）
func sliceDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
