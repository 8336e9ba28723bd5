package analysis

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("pyreview.analysis")
	meter  = otel.Meter("pyreview.analysis")
)

var (
	toolDuration metric.Float64Histogram
	toolRuns     metric.Int64Counter
	issueLines   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		toolDuration, err = meter.Float64Histogram(
			"review_tool_duration_seconds",
			metric.WithDescription("Duração de cada execução de ferramenta"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		toolRuns, err = meter.Int64Counter(
			"review_tool_runs_total",
			metric.WithDescription("Execuções de ferramenta por status"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		issueLines, err = meter.Int64Histogram(
			"review_issue_lines",
			metric.WithDescription("Linhas de problema devolvidas por análise"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

func startSpan(ctx context.Context, name string, tools int, sourceBytes int) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(
			attribute.Int("review.tools", tools),
			attribute.Int("review.source_bytes", sourceBytes),
		),
	)
}

func recordToolRun(ctx context.Context, tool string, status CheckStatus, d time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("status", string(status)),
	)
	toolDuration.Record(ctx, d.Seconds(), attrs)
	toolRuns.Add(ctx, 1, attrs)
}

func recordIssueLines(ctx context.Context, mode string, n int) {
	if err := initMetrics(); err != nil {
		return
	}
	issueLines.Record(ctx, int64(n), metric.WithAttributes(attribute.String("mode", mode)))
}
