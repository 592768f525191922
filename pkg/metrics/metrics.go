// Package metrics 提供聚合引擎的 Prometheus 观测指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry 应用自有的 prometheus registry
var Registry = prometheus.NewRegistry()

// factory 将指标直接注册到自有 Registry
var factory = promauto.With(Registry)

// AggregationPassesTotal 聚合趟执行总数
var AggregationPassesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "availability",
	Name:      "aggregation_passes_total",
	Help:      "Total number of availability aggregation passes executed",
})

// AggregationStalePassesTotal 因被更新趟取代而丢弃结果的趟数
var AggregationStalePassesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "availability",
	Name:      "aggregation_stale_passes_total",
	Help:      "Number of aggregation passes whose results were discarded as stale",
})

// AggregationPassDuration 单趟聚合耗时
var AggregationPassDuration = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "availability",
	Name:      "aggregation_pass_duration_seconds",
	Help:      "Time taken to complete one aggregation pass",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
})

// ClientKPIFailuresTotal 单客户 KPI 查询失败数（已降级为零值）
var ClientKPIFailuresTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "availability",
	Name:      "client_kpi_failures_total",
	Help:      "Number of per-client KPI fetches that failed and degraded to zero values",
})

// SectionFailuresTotal 趟级区块失败数（按区块分类）
var SectionFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "availability",
	Name:      "section_failures_total",
	Help:      "Pass-level section fetch failures by section (summary, records, employees, clients)",
}, []string{"section"})
