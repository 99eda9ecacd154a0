package ports

type ActionMetrics interface {
	RecordSuccess(kind string)
	RecordConflict()
	RecordFailure()
}
