package migration

import (
	"github.com/smallbiznis/sica/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module runs migrations before the server starts serving traffic.
var Module = fx.Module("migration",
	fx.Invoke(func(cfg config.Config, log *zap.Logger, gdb *gorm.DB) error {
		return Run(cfg, log, gdb)
	}),
)
