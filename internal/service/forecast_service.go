// internal/service/forecast_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/warelens/backend-go/internal/cache"
	"github.com/warelens/backend-go/internal/domain"
	"github.com/warelens/backend-go/internal/forecast"
	"github.com/warelens/backend-go/internal/repository"
	"github.com/warelens/backend-go/pkg/logger"
)

// maxConcurrentEvaluations bounds the per-item fan-out so a large catalog
// cannot exhaust database connections.
const maxConcurrentEvaluations = 8

// ForecastService loads inventory data and runs the forecasting engine over
// it. Items are independent, so the full-catalog path evaluates them in
// parallel.
type ForecastService struct {
	store  repository.Store
	engine *forecast.Engine
	cache  cache.ForecastCache
	now    func() time.Time
}

func NewForecastService(store repository.Store, engine *forecast.Engine, fc cache.ForecastCache) *ForecastService {
	return &ForecastService{
		store:  store,
		engine: engine,
		cache:  fc,
		now:    time.Now,
	}
}

// ForecastAll evaluates every item in the catalog. Results come back in the
// store's item order (by id).
func (s *ForecastService) ForecastAll(ctx context.Context) ([]domain.ItemForecast, error) {
	if cached, ok, err := s.cache.GetAll(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache read failed, recomputing")
	} else if ok {
		return cached, nil
	}

	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	now := s.now()
	results := make([]domain.ItemForecast, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEvaluations)
	for i, item := range items {
		g.Go(func() error {
			history, err := s.store.DemandHistory(gctx, item.ID)
			if err != nil {
				return fmt.Errorf("load demand history for item %d: %w", item.ID, err)
			}
			results[i] = s.engine.Evaluate(item, history, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.SetAll(ctx, results); err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache write failed")
	}

	return results, nil
}

// ForecastItem evaluates a single item.
func (s *ForecastService) ForecastItem(ctx context.Context, itemID int64) (domain.ItemForecast, error) {
	if cached, ok, err := s.cache.GetItem(ctx, itemID); err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache read failed, recomputing")
	} else if ok {
		return cached, nil
	}

	item, err := s.store.ItemByID(ctx, itemID)
	if err != nil {
		return domain.ItemForecast{}, err
	}

	history, err := s.store.DemandHistory(ctx, itemID)
	if err != nil {
		return domain.ItemForecast{}, fmt.Errorf("load demand history for item %d: %w", itemID, err)
	}

	result := s.engine.Evaluate(item, history, s.now())

	if err := s.cache.SetItem(ctx, result); err != nil {
		logger.Log.Warn().Err(err).Msg("forecast cache write failed")
	}

	return result, nil
}
