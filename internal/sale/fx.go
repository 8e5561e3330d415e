package sale

import (
	"github.com/smallbiznis/sica/internal/sale/repository"
	"github.com/smallbiznis/sica/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
