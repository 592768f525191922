package service

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ── ICS 解析器 ──────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容解析为派驻区间列表。
//
// 设计决策：
//   - 只取日期维度：DTSTART/DTEND 截断到日历日，时刻信息丢弃
//   - 全天事件的 DTEND 为排他边界（RFC 5545），换算为闭区间时减一天
//   - 无 DTEND 的事件视为单日派驻
//   - SUMMARY 为空的事件跳过
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second
)

// DutyPeriod ICS 解析出的派驻区间（闭区间，日历日粒度）
type DutyPeriod struct {
	Agenda string
	Start  time.Time
	End    time.Time
}

// FetchICSContent 从 URL 获取 ICS 内容
func FetchICSContent(rawURL string) (io.ReadCloser, error) {
	// webcal:// → https://
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	client := &http.Client{Timeout: icsFetchTimeout}
	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("获取 ICS 失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("获取 ICS 失败: HTTP %d", resp.StatusCode)
	}
	// 限制响应体大小，防止恶意 URL 返回超大内容导致 OOM
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// ParseDutyICS 解析 ICS 内容并转为派驻区间列表
func ParseDutyICS(reader io.Reader) ([]DutyPeriod, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	var periods []DutyPeriod
	for _, evt := range cal.Events() {
		p, ok := parseDutyVEvent(evt)
		if !ok {
			continue
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// parseDutyVEvent 解析单个 VEVENT 组件
func parseDutyVEvent(evt *ics.VEvent) (DutyPeriod, bool) {
	summary := evt.GetProperty(ics.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return DutyPeriod{}, false
	}
	agenda := strings.TrimSpace(summary.Value)

	dtStart, err := evt.GetStartAt()
	if err != nil {
		// 全天事件 DTSTART 为 VALUE=DATE 形式
		dtStart, err = evt.GetAllDayStartAt()
		if err != nil {
			return DutyPeriod{}, false
		}
	}
	start := truncateToDate(dtStart)

	end := start
	if dtEnd, err := evt.GetEndAt(); err == nil {
		end = truncateToDate(dtEnd)
	} else if dtEnd, err := evt.GetAllDayEndAt(); err == nil {
		// 全天事件 DTEND 为排他边界 → 闭区间减一天
		end = truncateToDate(dtEnd).AddDate(0, 0, -1)
	}
	if end.Before(start) {
		end = start
	}

	return DutyPeriod{Agenda: agenda, Start: start, End: end}, true
}

// truncateToDate 截断到 UTC 日历日
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
