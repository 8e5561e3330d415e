package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/clock"
	productdomain "github.com/smallbiznis/sica/internal/product/domain"
	productrepository "github.com/smallbiznis/sica/internal/product/repository"
	saledomain "github.com/smallbiznis/sica/internal/sale/domain"
	salerepository "github.com/smallbiznis/sica/internal/sale/repository"
	"github.com/smallbiznis/sica/internal/stats/domain"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	userrepository "github.com/smallbiznis/sica/internal/user/repository"
	"github.com/smallbiznis/sica/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc      domain.Service
	sales    saledomain.Repository
	products productdomain.Repository
	users    userdomain.Repository
	node     *snowflake.Node
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&userdomain.User{},
		&productdomain.Product{},
		&saledomain.Sale{},
		&saledomain.SaleItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	sales := salerepository.New(dbConn)
	products := productrepository.New(dbConn)
	users := userrepository.New(dbConn)

	svc := New(Params{
		Log:      zap.NewNop(),
		Clock:    clock.NewFakeClock(now),
		Sales:    sales,
		Products: products,
		Users:    users,
	})

	return &fixture{svc: svc, sales: sales, products: products, users: users, node: node, now: now}
}

func (f *fixture) addProduct(t *testing.T, name string) snowflake.ID {
	t.Helper()

	product := &productdomain.Product{
		ID:           f.node.Generate(),
		Name:         name,
		Price:        1,
		Status:       "available",
		RecordStatus: productdomain.RecordStatusActive,
		CreatedAt:    f.now,
		UpdatedAt:    f.now,
	}
	require.NoError(t, f.products.Create(context.Background(), product))
	return product.ID
}

func (f *fixture) addSeller(t *testing.T, name, email string) snowflake.ID {
	t.Helper()

	user := &userdomain.User{
		ID:           f.node.Generate(),
		Name:         name,
		Lastname:     name,
		Email:        email,
		PasswordHash: "x",
		Role:         "seller",
		RecordStatus: userdomain.RecordStatusActive,
		CreatedAt:    f.now,
		UpdatedAt:    f.now,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user.ID
}

func (f *fixture) addSale(t *testing.T, seller snowflake.ID, date time.Time, total float64, items map[snowflake.ID]int64) {
	t.Helper()

	saleID := f.node.Generate()
	sale := &saledomain.Sale{
		ID:        saleID,
		SellerID:  seller,
		ClientID:  f.node.Generate(),
		Date:      date,
		Total:     total,
		CreatedAt: f.now,
	}
	position := 0
	for productID, qty := range items {
		sale.Items = append(sale.Items, saledomain.SaleItem{
			ID:        f.node.Generate(),
			SaleID:    saleID,
			Position:  position,
			ProductID: productID,
			Quantity:  qty,
		})
		position++
	}
	require.NoError(t, f.sales.Create(context.Background(), sale))
}

func TestTopProducts(t *testing.T) {
	f := newFixture(t)
	pen := f.addProduct(t, "Pen")
	pad := f.addProduct(t, "Notepad")
	seller := f.addSeller(t, "Alice", "alice@example.com")

	f.addSale(t, seller, f.now, 10, map[snowflake.ID]int64{pen: 2, pad: 7})
	f.addSale(t, seller, f.now.Add(time.Hour), 5, map[snowflake.ID]int64{pen: 3})

	top, err := f.svc.TopProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, domain.ProductQuantity{Product: "Notepad", Quantity: 7}, top[0])
	assert.Equal(t, domain.ProductQuantity{Product: "Pen", Quantity: 5}, top[1])
}

func TestSalesPerDay(t *testing.T) {
	f := newFixture(t)
	pen := f.addProduct(t, "Pen")
	seller := f.addSeller(t, "Alice", "alice@example.com")

	f.addSale(t, seller, time.Date(2026, 5, 18, 9, 0, 0, 0, time.UTC), 10, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, seller, time.Date(2026, 5, 18, 17, 0, 0, 0, time.UTC), 15, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, seller, time.Date(2026, 5, 19, 9, 0, 0, 0, time.UTC), 20, map[snowflake.ID]int64{pen: 1})

	days, err := f.svc.SalesPerDay(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, domain.DateTotal{Date: "2026-05-18", Total: 25}, days[0])
	assert.Equal(t, domain.DateTotal{Date: "2026-05-19", Total: 20}, days[1])
}

func TestSalesPerMonthCurrentYearOnly(t *testing.T) {
	f := newFixture(t)
	pen := f.addProduct(t, "Pen")
	seller := f.addSeller(t, "Alice", "alice@example.com")

	f.addSale(t, seller, time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), 10, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, seller, time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC), 5, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, seller, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), 30, map[snowflake.ID]int64{pen: 1})
	// previous year is excluded
	f.addSale(t, seller, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), 99, map[snowflake.ID]int64{pen: 1})

	months, err := f.svc.SalesPerMonth(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, domain.PeriodTotal{Period: 2, Total: 15}, months[0])
	assert.Equal(t, domain.PeriodTotal{Period: 5, Total: 30}, months[1])
}

func TestSalesPerWeekUsesISOWeeks(t *testing.T) {
	f := newFixture(t)
	pen := f.addProduct(t, "Pen")
	seller := f.addSeller(t, "Alice", "alice@example.com")

	// 2026-01-01 falls in ISO week 1 of 2026
	f.addSale(t, seller, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), 10, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, seller, time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), 5, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, seller, time.Date(2026, 1, 8, 9, 0, 0, 0, time.UTC), 20, map[snowflake.ID]int64{pen: 1})

	weeks, err := f.svc.SalesPerWeek(context.Background())
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, domain.PeriodTotal{Period: 1, Total: 15}, weeks[0])
	assert.Equal(t, domain.PeriodTotal{Period: 2, Total: 20}, weeks[1])
}

func TestSalesPerSeller(t *testing.T) {
	f := newFixture(t)
	pen := f.addProduct(t, "Pen")
	alice := f.addSeller(t, "Alice", "alice@example.com")
	bob := f.addSeller(t, "Bob", "bob@example.com")

	f.addSale(t, alice, f.now, 10, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, alice, f.now.Add(time.Hour), 15, map[snowflake.ID]int64{pen: 1})
	f.addSale(t, bob, f.now, 7, map[snowflake.ID]int64{pen: 1})

	sellers, err := f.svc.SalesPerSeller(context.Background())
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, domain.SellerTotal{Seller: "Alice", Total: 25}, sellers[0])
	assert.Equal(t, domain.SellerTotal{Seller: "Bob", Total: 7}, sellers[1])
}

func TestTopProductsMissingProductKeepsAggregate(t *testing.T) {
	f := newFixture(t)
	seller := f.addSeller(t, "Alice", "alice@example.com")
	ghost := f.node.Generate()

	f.addSale(t, seller, f.now, 10, map[snowflake.ID]int64{ghost: 4})

	top, err := f.svc.TopProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, ghost.String(), top[0].Product)
	assert.EqualValues(t, 4, top[0].Quantity)
}
