package input

import (
	"context"

	"sheetloc/internal/domain/entities"
)

// Compiler turns a translation table into per-language documents.
type Compiler interface {
	Run(ctx context.Context) (*entities.Report, error)
}
