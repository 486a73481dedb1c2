package ports

// MetricsRecorder counts engine activity.
type MetricsRecorder interface {
	DeliveryStarted()
	DeliveryClosed(endType string, forced bool)
	ClockAdvanced()
	ReconcileFailed()
}
