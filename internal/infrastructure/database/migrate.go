package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"sheetloc/internal/pkg/logger"
)

// RunMigrations brings the translation schema up to date with the SQL files
// in migrationsPath.
func RunMigrations(dsn string, migrationsPath string) error {
	dir, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("migrations path %s: %w", migrationsPath, err)
	}
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("migrations path %s: %w", migrationsPath, err)
	} else if !info.IsDir() {
		return fmt.Errorf("migrations path %s: not a directory", migrationsPath)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dsn)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("translation schema migrated",
		zap.String("path", migrationsPath),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
		zap.Bool("changed", err == nil),
	)
	return nil
}
