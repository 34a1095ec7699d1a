package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// once 用来保证指标只注册一次。
	// Prometheus 的 registry 不允许重复注册同名指标，否则会直接 panic。
	once sync.Once

	// IDsMintedTotal：累计发号数（Counter）。
	// 每成功发一个 ID 就 +1，不会减少；常用于计算发号 QPS。
	IDsMintedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "idgen_ids_minted_total",
			Help: "成功发出的雪花 ID 总数",
		},
	)

	// ClockRegressionTotal：检测到时钟回拨的次数（Counter）。
	// 正常环境里应该恒为 0；有增长说明 NTP/宿主机时钟在回跳，需要排查。
	ClockRegressionTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "idgen_clock_regression_total",
			Help: "因时钟回拨而拒绝发号的次数",
		},
	)

	// SequenceExhaustedTotal：同一毫秒内 4096 个序号用完、被迫等下一毫秒的次数（Counter）。
	// 有增长说明单实例发号压力已经顶到了时钟粒度（每毫秒 4096 个）。
	SequenceExhaustedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "idgen_sequence_exhausted_total",
			Help: "序号耗尽等待下一毫秒的次数",
		},
	)

	// MintDurationSeconds：单次发号耗时分布（Histogram）。
	// 正常情况是亚微秒级；出现毫秒级的样本说明撞上了序号耗尽的等待。
	MintDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "idgen_mint_duration_seconds",
			Help:    "Snowflake ID mint latency distributions.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 7), // 100ns ~ 10ms
		},
	)
)

// Init 注册指标：只允许注册一次（否则 panic: duplicate metrics collector registration）
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			IDsMintedTotal,
			ClockRegressionTotal,
			SequenceExhaustedTotal,
			MintDurationSeconds,
		)
	})
}
