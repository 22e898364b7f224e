package ports

import "plantverse/internal/domain/garden"

type CareMetrics interface {
	RecordSuccess(action garden.ActionType)
	RecordConflict()
	RecordFailure()
}
