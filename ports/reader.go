package ports

import (
	"context"
	"io"

	"univar/domain/dataset"
)

// DatasetReader turns an uploaded file into a Dataset. The filename
// selects the format.
type DatasetReader interface {
	Read(ctx context.Context, filename string, r io.Reader) (*dataset.Dataset, error)
}
