package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/models"
)

// Overview is the combined stats-card payload: independent fetches
// joined into derived numbers.
type Overview struct {
	TotalRevenue      float64
	PendingDeliveries int
	AvailableProducts int
	Split             CategorySplit
}

// Service assembles overviews from the backend collections.
type Service struct {
	src api.ReportSource
}

// NewService wraps a report source.
func NewService(src api.ReportSource) *Service {
	return &Service{src: src}
}

// Overview fans out the sales, orders and products fetches, waits for
// all of them, and combines the results. Any failed fetch fails the
// whole overview; the caller renders the error state.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var (
		sales    []models.Sale
		orders   []models.Order
		products []models.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.src.ListSales(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.src.ListOrders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.src.ListProducts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{
		TotalRevenue:      TotalRevenue(sales),
		PendingDeliveries: PendingDeliveries(orders),
		AvailableProducts: len(products),
		Split:             SplitByCategory(sales, products),
	}, nil
}
