package provider

import (
	"github.com/smallbiznis/sica/internal/provider/repository"
	"github.com/smallbiznis/sica/internal/provider/service"
	"go.uber.org/fx"
)

var Module = fx.Module("provider.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
