package output

import "sheetloc/internal/domain/entities"

// DocumentWriter persists one language document per call.
type DocumentWriter interface {
	// Prepare creates the destination (e.g. the output directory) before any
	// document is written.
	Prepare() error
	// Write stores doc for lang and returns the locations written.
	Write(lang string, doc *entities.Document) ([]string, error)
}
