package settlement

// MetricsCollector records settlement observability events.
type MetricsCollector interface {
	RecordOutcome(status string, amount float64)
	RecordError(step, errType string)
	RecordSideEffectFailure(kind string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOutcome(string, float64)   {}
func (n *NoopMetricsCollector) RecordError(string, string)      {}
func (n *NoopMetricsCollector) RecordSideEffectFailure(string)  {}
