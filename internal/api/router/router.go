package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hris/backend/config"
	"hris/backend/internal/api/handler"
	"hris/backend/internal/api/middleware"
	"hris/backend/pkg/metrics"
	"hris/backend/pkg/redis"
)

// 单请求体上限 10MB，足够容纳常规 ICS 文件
const maxBodyBytes = 10 << 20

// Setup 注册全部路由与中间件
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// ── 业务 API ──
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(rdb, logger, 120, time.Minute))
	{
		// 可用性报表
		reports := api.Group("/reports")
		{
			reports.GET("/availability", h.Report.GetAvailabilityView)
			reports.GET("/unavailable", h.Report.GetUnavailableReport)
			reports.GET("/client-visits/:id", h.Report.GetClientVisitReport)
		}

		// 花名册只读查询
		api.GET("/employees", h.Roster.ListEmployees)
		api.GET("/departments", h.Roster.ListDepartments)
		api.GET("/positions", h.Roster.ListPositions)
		api.GET("/clients", h.Roster.ListClients)
		api.GET("/projects", h.Roster.ListProjects)

		// 值班记录
		duty := api.Group("/duty-assignments")
		{
			duty.POST("", h.Duty.CreateDutyAssignment)
			duty.POST("/import", h.Duty.ImportICS)
		}

		// 报表导出
		api.GET("/export/availability", h.Export.ExportAvailability)
	}

	return r
}
