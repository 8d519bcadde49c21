package output

import (
	"context"

	"sheetloc/internal/domain/entities"
)

// TableSource loads a translation table. Load fails as a whole: a source
// never returns a partially parsed table.
type TableSource interface {
	Load(ctx context.Context) (*entities.Table, error)
}
