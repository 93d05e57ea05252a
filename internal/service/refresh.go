package service

import (
	"context"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/talkincode/selectshop/internal/search"
	"github.com/talkincode/selectshop/internal/store"
	"github.com/talkincode/selectshop/pkg/metrics"
)

// TopicPriceReached is published when a refreshed price falls to or
// below the owner's target price.
const TopicPriceReached = "product.price.reached"

type PriceReachedEvent struct {
	ProductID   int64
	UserID      int64
	Title       string
	Link        string
	LowestPrice int
	MyPrice     int
}

// Searcher is the external shopping-search collaborator.
type Searcher interface {
	SearchItems(ctx context.Context, query string) ([]search.Item, error)
}

// PriceRefresher re-queries the external search for every tracked
// product and updates its price from the top result. The limiter paces
// the queries so the collaborator's rate limit is respected; iteration
// stays strictly sequential.
type PriceRefresher struct {
	products store.ProductStore
	service  *ProductService
	searcher Searcher
	limiter  *rate.Limiter
	bus      EventBus.Bus

	mu      sync.Mutex
	running bool
}

func NewPriceRefresher(products store.ProductStore, svc *ProductService, searcher Searcher, limiter *rate.Limiter, bus EventBus.Bus) *PriceRefresher {
	return &PriceRefresher{
		products: products,
		service:  svc,
		searcher: searcher,
		limiter:  limiter,
		bus:      bus,
	}
}

// SetInterval adjusts the pacing between consecutive search queries.
func (r *PriceRefresher) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	r.limiter.SetLimit(rate.Every(d))
}

// RefreshAll runs one full refresh pass. A pass already in flight makes
// a second trigger return immediately; overlapping passes would race on
// the collaborator's rate limit.
func (r *PriceRefresher) RefreshAll(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		zap.L().Warn("price refresh already running, skipping this trigger")
		return nil
	}
	r.running = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	productList, err := r.products.ListAll(ctx)
	if err != nil {
		return err
	}

	zap.L().Info("price refresh started", zap.Int("products", len(productList)))
	start := time.Now()

	// drain any banked token so the first query also honors the interval
	if r.limiter.Limit() != rate.Inf {
		r.limiter.AllowN(time.Now(), r.limiter.Burst())
	}

	var refreshed, failed int
	for i := range productList {
		p := &productList[i]

		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}

		items, err := r.searcher.SearchItems(ctx, p.Title)
		if err != nil {
			zap.L().Error("product search failed",
				zap.Int64("product_id", p.ID),
				zap.Error(err))
			failed++
			continue
		}
		if len(items) == 0 {
			continue
		}

		item := items[0]
		if err := r.service.UpdateBySearch(ctx, p.ID, item); err != nil {
			zap.L().Error("price update failed",
				zap.Int64("product_id", p.ID),
				zap.Error(err))
			failed++
			continue
		}
		refreshed++

		if r.bus != nil && p.MyPrice > 0 && item.LowestPrice <= p.MyPrice {
			r.bus.Publish(TopicPriceReached, PriceReachedEvent{
				ProductID:   p.ID,
				UserID:      p.UserID,
				Title:       item.Title,
				Link:        item.Link,
				LowestPrice: item.LowestPrice,
				MyPrice:     p.MyPrice,
			})
		}
	}

	metrics.SetGauge("refresh_products_total", int64(len(productList)))
	metrics.SetGauge("refresh_products_updated", int64(refreshed))
	metrics.SetGauge("refresh_products_failed", int64(failed))

	zap.L().Info("price refresh finished",
		zap.Int("products", len(productList)),
		zap.Int("updated", refreshed),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
