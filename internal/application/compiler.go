package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sheetloc/internal/domain"
	"sheetloc/internal/domain/entities"
	"sheetloc/internal/ports/input"
	"sheetloc/internal/ports/output"
	"sheetloc/pkg/keypath"
)

var _ input.Compiler = (*CompilerService)(nil)

// CompilerService turns a translation table into one nested document per
// language: discover languages, populate documents, emit documents.
type CompilerService struct {
	source    output.TableSource
	writer    output.DocumentWriter
	delimiter string
	log       *zap.Logger
}

func NewCompilerService(
	source output.TableSource,
	writer output.DocumentWriter,
	delimiter string,
	log *zap.Logger,
) *CompilerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompilerService{
		source:    source,
		writer:    writer,
		delimiter: delimiter,
		log:       log,
	}
}

// Run executes one compilation. It returns an error only for fatal
// conditions; per-file write failures are recorded in the report.
func (s *CompilerService) Run(ctx context.Context) (*entities.Report, error) {
	table, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}

	languages, err := DiscoverLanguages(table)
	if err != nil {
		return nil, err
	}
	s.log.Info("found languages", zap.Strings("languages", languages))

	report := &entities.Report{
		Languages: languages,
		RowsRead:  len(table.Rows),
		Failed:    make(map[string]error),
	}
	docs := s.BuildDocuments(table, languages, report)

	if err := s.EmitDocuments(languages, docs, report); err != nil {
		return nil, err
	}
	return report, nil
}

// DiscoverLanguages returns every header field except the key column.
func DiscoverLanguages(table *entities.Table) ([]string, error) {
	if !table.HasKeyColumn() {
		return nil, fmt.Errorf("%w: %q", domain.ErrKeyColumnMissing, table.KeyColumn)
	}
	languages := table.Languages()
	if len(languages) == 0 {
		return nil, domain.ErrNoLanguages
	}
	return languages, nil
}

// BuildDocuments populates one document per language from the table rows,
// in input order. Rows without a usable key and empty cells are logged and
// skipped. report may be nil.
func (s *CompilerService) BuildDocuments(table *entities.Table, languages []string, report *entities.Report) map[string]*entities.Document {
	if report == nil {
		report = &entities.Report{}
	}
	docs := make(map[string]*entities.Document, len(languages))
	for _, lang := range languages {
		docs[lang] = entities.NewDocument()
	}

	for i, row := range table.Rows {
		key := row.Key(table.KeyColumn)
		path, err := keypath.Split(key, s.delimiter)
		if err != nil {
			s.log.Warn("skipping row with unusable key",
				zap.Int("row", i+1),
				zap.String("key", key),
				zap.Error(err),
			)
			report.RowsSkipped++
			continue
		}

		for _, lang := range languages {
			value, ok := row.Value(lang)
			if !ok {
				s.log.Warn("missing translation",
					zap.String("key", key),
					zap.String("language", lang),
				)
				report.MissingCells++
				continue
			}
			docs[lang].Set(path, value)
		}
	}
	return docs
}

// EmitDocuments writes every language document. The destination is prepared
// first; failing to prepare it is fatal, a failing language is not.
func (s *CompilerService) EmitDocuments(languages []string, docs map[string]*entities.Document, report *entities.Report) error {
	if err := s.writer.Prepare(); err != nil {
		return err
	}
	if report.Failed == nil {
		report.Failed = make(map[string]error)
	}

	for _, lang := range languages {
		written, err := s.writer.Write(lang, docs[lang])
		for _, path := range written {
			s.log.Info("generated", zap.String("language", lang), zap.String("path", path))
		}
		report.Written = append(report.Written, written...)
		if err != nil {
			s.log.Error("failed to write language document",
				zap.String("language", lang),
				zap.Error(err),
			)
			report.Failed[lang] = err
		}
	}
	return nil
}
