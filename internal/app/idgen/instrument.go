package idgen

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"snowid.local/internal/platform/metrics"
)

// Source 表示“能发号”的最小能力。
//
// 设计原因：
// - 上层只依赖接口：测试时可以换成固定返回值的假实现
// - Instrumented 装饰任意 Source，不关心底下是真发号器还是别的实现
type Source interface {
	NextID() (uint64, error)
}

// Instrumented 给发号加上指标和 Trace 的装饰器（装饰器模式，对应 HTTP 服务里的 middleware 层：
// 观测是横切关注点，不要写进 Generator 的算法里）。
//
// 只用 otel 的 API：exporter/SDK 由宿主进程自己装配，这里不做任何网络上报。
type Instrumented struct {
	src    Source
	tracer trace.Tracer
}

// NewInstrumented 包装一个 Source。如果底下是 *Generator，顺便挂上序号耗尽的计数钩子。
func NewInstrumented(src Source) *Instrumented {
	metrics.Init()
	if g, ok := src.(*Generator); ok {
		g.onSequenceWait = metrics.SequenceExhaustedTotal.Inc
	}
	return &Instrumented{
		src:    src,
		tracer: otel.Tracer("idgen"),
	}
}

// NextID 委托给底层 Source，并记录耗时、计数和 span。
// ctx 只用于串 trace，发号本身不支持取消（见 Generator.NextID 的等待说明）。
func (m *Instrumented) NextID(ctx context.Context) (uint64, error) {
	_, span := m.tracer.Start(ctx, "idgen.NextID")
	defer span.End()

	start := time.Now()
	id, err := m.src.NextID()
	metrics.MintDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, ErrClockMovedBack) {
			metrics.ClockRegressionTotal.Inc()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	metrics.IDsMintedTotal.Inc()
	_, instance, sequence := Split(id)
	span.SetAttributes(
		attribute.Int64("idgen.instance_id", int64(instance)),
		attribute.Int64("idgen.sequence", int64(sequence)),
	)
	return id, nil
}
