package observability

import "github.com/smallbiznis/sica/internal/config"

// Config controls observability middleware behavior.
type Config struct {
	ServiceName string
	Environment string
	debug       bool
}

func NewConfig(appCfg config.Config) Config {
	return Config{
		ServiceName: appCfg.AppName,
		Environment: appCfg.Environment,
		debug:       appCfg.Environment != "production",
	}
}

func (c Config) Debug() bool {
	return c.debug
}
