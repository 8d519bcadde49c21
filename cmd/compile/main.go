// Command compile converts the translation spreadsheet into one message file
// per language.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"sheetloc/internal/application"
	"sheetloc/internal/config"
	"sheetloc/internal/domain/entities"
	"sheetloc/internal/infrastructure/csvtable"
	"sheetloc/internal/infrastructure/database"
	"sheetloc/internal/infrastructure/locales"
	"sheetloc/internal/pkg/logger"
	"sheetloc/internal/ports/input"
	"sheetloc/internal/ports/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	app := kingpin.New("compile", "Convert a translation spreadsheet into per-language message files.")
	configPath := app.Flag("config", "Configuration file (default: ./sheetloc.yaml when present).").Envar("SHEETLOC_CONFIG").String()
	var o config.Overrides
	app.Flag("source", "Input CSV file.").StringVar(&o.SourcePath)
	app.Flag("out", "Output directory.").StringVar(&o.OutputDir)
	app.Flag("key-column", "Header of the key column.").StringVar(&o.KeyColumn)
	app.Flag("format", "Output format (json, toml, yaml); repeatable.").StringsVar(&o.Formats)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.Apply(o); err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	source, closeSource, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	writer, err := locales.NewFileWriter(cfg.Output.Dir, cfg.Output.Formats)
	if err != nil {
		return err
	}

	var compiler input.Compiler = application.NewCompilerService(source, writer, cfg.Source.KeyDelimiter, logger.L())
	report, err := compiler.Run(ctx)
	if err != nil {
		return err
	}

	logSummary(report)
	return nil
}

// logSummary logs the run at error level when a language document could not
// be written, at warn level when rows or cells were skipped.
func logSummary(report *entities.Report) {
	fields := []zap.Field{
		zap.Strings("languages", report.Languages),
		zap.Int("rows", report.RowsRead),
		zap.Int("rows_skipped", report.RowsSkipped),
		zap.Int("missing_cells", report.MissingCells),
		zap.Int("files", len(report.Written)),
	}
	switch {
	case !report.OK():
		failed := make([]string, 0, len(report.Failed))
		for lang := range report.Failed {
			failed = append(failed, lang)
		}
		sort.Strings(failed)
		logger.Error("translation files generated with errors", append(fields, zap.Strings("failed_languages", failed))...)
	case report.RowsSkipped > 0 || report.MissingCells > 0:
		logger.Warn("translation files generated with gaps", fields...)
	default:
		logger.Info("translation files generated successfully", fields...)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newSource returns the configured table source and a function releasing
// its resources.
func newSource(ctx context.Context, cfg *config.Config) (output.TableSource, func(), error) {
	if cfg.Source.Driver != config.DriverPostgres {
		return csvtable.NewReader(cfg.Source.Path, cfg.Source.KeyColumn, logger.L()), func() {}, nil
	}

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
			return nil, nil, err
		}
	}
	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return database.NewTableRepository(pool, cfg.Source.KeyColumn), pool.Close, nil
}
