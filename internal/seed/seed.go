// Package seed loads a starter dataset for local development.
package seed

import (
	"context"
	"errors"

	"github.com/smallbiznis/sica/internal/config"
	productdomain "github.com/smallbiznis/sica/internal/product/domain"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	Users    userdomain.Service
	Products productdomain.Service
}

// Run inserts a bootstrap admin account and a small catalog. Existing
// records are left alone so repeated starts are safe.
func Run(p Params) error {
	if !p.Cfg.SeedOnStart {
		return nil
	}

	log := p.Log.Named("seed")
	ctx := context.Background()

	admin := userdomain.CreateRequest{
		Name:     "Admin",
		Lastname: "Admin",
		Email:    "admin@sica.local",
		Password: "administrator",
		Role:     "admin",
	}
	if _, err := p.Users.Create(ctx, admin); err != nil {
		if !errors.Is(err, userdomain.ErrEmailExists) {
			return err
		}
	} else {
		log.Info("seeded admin user", zap.String("email", admin.Email))
	}

	price := func(v float64) *float64 { return &v }
	catalog := []productdomain.CreateRequest{
		{Name: "Notebook", Category: "stationery", Price: price(2.50), Status: "available", Quantity: 120},
		{Name: "Ballpoint Pen", Category: "stationery", Price: price(0.80), Status: "available", Quantity: 500},
		{Name: "Stapler", Category: "office", Price: price(6.00), Status: "available", Quantity: 40},
		{Name: "Printer Paper", Category: "office", Price: price(4.25), Status: "available", Quantity: 200},
		{Name: "Whiteboard Marker", Category: "stationery", Price: price(1.50), Status: "available", Quantity: 300},
	}
	for _, req := range catalog {
		if _, err := p.Products.Create(ctx, req); err != nil {
			if errors.Is(err, productdomain.ErrNameExists) {
				continue
			}
			return err
		}
	}
	log.Info("seeded product catalog", zap.Int("products", len(catalog)))
	return nil
}

// Module runs the seeder during startup when enabled.
var Module = fx.Module("seed",
	fx.Invoke(Run),
)
