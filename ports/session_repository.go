package ports

import (
	"univar/domain/dataset"
)

// DatasetStore keeps the dataset each browser session is exploring
type DatasetStore interface {
	Put(sessionID string, ds *dataset.Dataset)
	Get(sessionID string) (*dataset.Dataset, bool)
	Delete(sessionID string)
}
