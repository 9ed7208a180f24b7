package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector 收集考勤系统的运行指标
type Collector struct {
	scansIngested     prometheus.Counter
	scansDebounced    prometheus.Counter
	reportsBuilt      prometheus.Counter
	reportMailsQueued prometheus.Counter
}

// NewCollector 创建 Collector 并把所有指标注册到指定的注册表上
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		scansIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_scans_ingested_total",
			Help: "已入库的刷卡记录总数",
		}),
		scansDebounced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_scans_debounced_total",
			Help: "因防抖被拒绝的刷卡总数",
		}),
		reportsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_reports_built_total",
			Help: "已生成的考勤日报总数",
		}),
		reportMailsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_report_mails_queued_total",
			Help: "已加入发送队列的日报邮件总数",
		}),
	}

	reg.MustRegister(
		c.scansIngested,
		c.scansDebounced,
		c.reportsBuilt,
		c.reportMailsQueued,
	)

	return c
}

func (c *Collector) RecordScanIngested() {
	c.scansIngested.Inc()
}

func (c *Collector) RecordScanDebounced() {
	c.scansDebounced.Inc()
}

func (c *Collector) RecordReportBuilt() {
	c.reportsBuilt.Inc()
}

func (c *Collector) RecordReportMailQueued() {
	c.reportMailsQueued.Inc()
}

// Handler 返回暴露指定注册表的 HTTP handler
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
