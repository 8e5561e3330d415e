package user

import (
	"github.com/smallbiznis/sica/internal/user/repository"
	"github.com/smallbiznis/sica/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
