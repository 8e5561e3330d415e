// Package migration applies the database schema on startup.
package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	authdomain "github.com/smallbiznis/sica/internal/auth/domain"
	"github.com/smallbiznis/sica/internal/config"
	productdomain "github.com/smallbiznis/sica/internal/product/domain"
	providerdomain "github.com/smallbiznis/sica/internal/provider/domain"
	saledomain "github.com/smallbiznis/sica/internal/sale/domain"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Run applies versioned SQL migrations on postgres. Other dialects use
// the model definitions directly, which keeps local sqlite and mysql
// setups working without a separate migration set.
func Run(cfg config.Config, log *zap.Logger, gdb *gorm.DB) error {
	log = log.Named("migration")

	if cfg.DBType != "postgres" {
		log.Info("applying schema from models", zap.String("db_type", cfg.DBType))
		return autoMigrate(gdb)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.DBName, driver)
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("schema up to date")
			return nil
		}
		return fmt.Errorf("migration: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("migration: %w", err)
	}
	log.Info("schema migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func autoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&authdomain.Token{},
		&userdomain.User{},
		&productdomain.Product{},
		&providerdomain.Provider{},
		&saledomain.Sale{},
		&saledomain.SaleItem{},
	)
}
