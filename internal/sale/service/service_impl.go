package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/clock"
	"github.com/smallbiznis/sica/internal/config"
	productdomain "github.com/smallbiznis/sica/internal/product/domain"
	"github.com/smallbiznis/sica/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	Clock    clock.Clock
	GenID    *snowflake.Node
	Repo     domain.Repository
	Products productdomain.Repository
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	genID    *snowflake.Node
	repo     domain.Repository
	products productdomain.Repository
	userRole domain.UserRole
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("sale.service"),
		clock:    p.Clock,
		genID:    p.GenID,
		repo:     p.Repo,
		products: p.Products,
		userRole: userRoleFromConfig(p.Cfg.SalesUserFilter),
	}
}

// CreateSale resolves every line item against the catalog at call time,
// computes the total from the prices observed right now, and persists
// the sale atomically. Any unresolved product aborts the whole call.
func (s *Service) CreateSale(ctx context.Context, req domain.CreateRequest) (*domain.Receipt, error) {
	sellerID, err := snowflake.ParseString(strings.TrimSpace(req.SellerID))
	if err != nil {
		return nil, domain.ErrInvalidSellerID
	}
	clientID, err := snowflake.ParseString(strings.TrimSpace(req.ClientID))
	if err != nil {
		return nil, domain.ErrInvalidClientID
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrMissingItems
	}

	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	saleID := s.genID.Generate()
	items := make([]domain.SaleItem, 0, len(req.Items))
	lines := make([]domain.ReceiptLine, 0, len(req.Items))
	var total float64

	for i, item := range req.Items {
		productID, err := snowflake.ParseString(strings.TrimSpace(item.ProductID))
		if err != nil {
			return nil, domain.ErrInvalidProductID
		}
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		// price is read fresh per line item; a concurrent price change
		// between two calls legitimately yields different totals
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, productdomain.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID.String())
			}
			return nil, err
		}
		if product.RecordStatus != productdomain.RecordStatusActive {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID.String())
		}

		subtotal := product.Price * float64(item.Quantity)
		total += subtotal

		items = append(items, domain.SaleItem{
			ID:        s.genID.Generate(),
			SaleID:    saleID,
			Position:  i,
			ProductID: productID,
			Quantity:  item.Quantity,
		})
		lines = append(lines, domain.ReceiptLine{
			ProductID: productID.String(),
			Product:   product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
	}

	sale := &domain.Sale{
		ID:        saleID,
		SellerID:  sellerID,
		ClientID:  clientID,
		Date:      date,
		Total:     total,
		CreatedAt: s.clock.Now(),
		Items:     items,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.log.Info("sale recorded",
		zap.String("sale_id", saleID.String()),
		zap.Int("items", len(items)),
		zap.Float64("total", total),
	)

	return &domain.Receipt{
		ID:       saleID.String(),
		SellerID: sellerID.String(),
		ClientID: clientID.String(),
		Date:     date.Format(domain.DateTimeLayout),
		Total:    total,
		Items:    lines,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	sales, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(sales), nil
}

// ListByDateRange filters on the sale date, both bounds inclusive. An
// unparsable bound is a validation error, never an empty result. A
// date-only upper bound covers the whole day it names.
func (s *Service) ListByDateRange(ctx context.Context, lo, hi string) ([]domain.Response, error) {
	loTime, _, err := domain.ParseDate(strings.TrimSpace(lo))
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	hiTime, dateOnly, err := domain.ParseDate(strings.TrimSpace(hi))
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if dateOnly {
		hiTime = hiTime.Add(24*time.Hour - time.Second)
	}
	if hiTime.Before(loTime) {
		return nil, domain.ErrInvalidDate
	}

	sales, err := s.repo.FindByDateRange(ctx, loTime, hiTime)
	if err != nil {
		return nil, err
	}
	return toResponses(sales), nil
}

func (s *Service) ListByProduct(ctx context.Context, productID string) ([]domain.Response, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(productID))
	if err != nil {
		return nil, domain.ErrInvalidProductID
	}

	sales, err := s.repo.FindByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponses(sales), nil
}

// ListByUser matches the configured side of the sale (seller, client or
// both; both by default).
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Response, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(userID))
	if err != nil {
		return nil, domain.ErrInvalidSellerID
	}

	sales, err := s.repo.FindByUser(ctx, id, s.userRole)
	if err != nil {
		return nil, err
	}
	return toResponses(sales), nil
}

func (s *Service) resolveDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return s.clock.Now().Truncate(time.Second), nil
	}
	date, _, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return date, nil
}

func toResponses(sales []domain.Sale) []domain.Response {
	resp := make([]domain.Response, 0, len(sales))
	for i := range sales {
		resp = append(resp, toResponse(&sales[i]))
	}
	return resp
}

func toResponse(sale *domain.Sale) domain.Response {
	items := make([]domain.LineItem, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, domain.LineItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}
	return domain.Response{
		ID:       sale.ID.String(),
		SellerID: sale.SellerID.String(),
		ClientID: sale.ClientID.String(),
		Date:     sale.Date.Format(domain.DateTimeLayout),
		Total:    sale.Total,
		Items:    items,
	}
}

func userRoleFromConfig(raw string) domain.UserRole {
	switch raw {
	case config.SalesUserSeller:
		return domain.UserRoleSeller
	case config.SalesUserClient:
		return domain.UserRoleClient
	default:
		return domain.UserRoleBoth
	}
}
