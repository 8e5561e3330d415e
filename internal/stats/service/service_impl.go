package service

import (
	"context"
	"sort"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/clock"
	productdomain "github.com/smallbiznis/sica/internal/product/domain"
	saledomain "github.com/smallbiznis/sica/internal/sale/domain"
	"github.com/smallbiznis/sica/internal/stats/domain"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	Sales    saledomain.Repository
	Products productdomain.Repository
	Users    userdomain.Repository
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	sales    saledomain.Repository
	products productdomain.Repository
	users    userdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("stats.service"),
		clock:    p.Clock,
		sales:    p.Sales,
		products: p.Products,
		users:    p.Users,
	}
}

// TopProducts sums quantities sold per product across all sales,
// most sold first.
func (s *Service) TopProducts(ctx context.Context) ([]domain.ProductQuantity, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	quantities := make(map[snowflake.ID]int64)
	for _, sale := range sales {
		for _, item := range sale.Items {
			quantities[item.ProductID] += item.Quantity
		}
	}

	names, err := s.productNames(ctx, quantities)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProductQuantity, 0, len(quantities))
	for id, qty := range quantities {
		name, ok := names[id]
		if !ok {
			// product removed since the sale; keep the aggregate under its id
			name = id.String()
		}
		out = append(out, domain.ProductQuantity{Product: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Product < out[j].Product
	})
	return out, nil
}

// SalesPerDay sums totals per calendar day, in date order.
func (s *Service) SalesPerDay(ctx context.Context) ([]domain.DateTotal, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, sale := range sales {
		day := sale.Date.Format(saledomain.DateOnlyLayout)
		totals[day] += sale.Total
	}

	out := make([]domain.DateTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, domain.DateTotal{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// SalesPerWeek sums totals per ISO week of the current year.
func (s *Service) SalesPerWeek(ctx context.Context) ([]domain.PeriodTotal, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	currentYear := s.clock.Now().Year()
	totals := make(map[int]float64)
	for _, sale := range sales {
		year, week := sale.Date.ISOWeek()
		if year != currentYear {
			continue
		}
		totals[week] += sale.Total
	}

	return sortedPeriods(totals), nil
}

// SalesPerMonth sums totals per month of the current year.
func (s *Service) SalesPerMonth(ctx context.Context) ([]domain.PeriodTotal, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	currentYear := s.clock.Now().Year()
	totals := make(map[int]float64)
	for _, sale := range sales {
		if sale.Date.Year() != currentYear {
			continue
		}
		totals[int(sale.Date.Month())] += sale.Total
	}

	return sortedPeriods(totals), nil
}

// SalesPerSeller sums totals per seller, resolved to the seller's name.
func (s *Service) SalesPerSeller(ctx context.Context) ([]domain.SellerTotal, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[snowflake.ID]float64)
	for _, sale := range sales {
		totals[sale.SellerID] += sale.Total
	}

	ids := make([]snowflake.ID, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[snowflake.ID]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}

	out := make([]domain.SellerTotal, 0, len(totals))
	for id, total := range totals {
		name, ok := names[id]
		if !ok {
			name = id.String()
		}
		out = append(out, domain.SellerTotal{Seller: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seller < out[j].Seller })
	return out, nil
}

func (s *Service) productNames(ctx context.Context, quantities map[snowflake.ID]int64) (map[snowflake.ID]string, error) {
	ids := make([]snowflake.ID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[snowflake.ID]string, len(products))
	for i := range products {
		names[products[i].ID] = products[i].Name
	}
	return names, nil
}

func sortedPeriods(totals map[int]float64) []domain.PeriodTotal {
	out := make([]domain.PeriodTotal, 0, len(totals))
	for period, total := range totals {
		out = append(out, domain.PeriodTotal{Period: period, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
