package ports

type ActionMetrics interface {
	RecordSuccess(outcome string)
	RecordConflict()
	RecordFailure()
}
