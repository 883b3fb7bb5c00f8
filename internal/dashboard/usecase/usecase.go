package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/dashboard"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/dashboard/dto"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/model"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/order"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/pkg/cache"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment"
	"go.uber.org/zap"
)

const statsCacheKey = "dashboard:stats"

type dashboardUseCase struct {
	shipments shipment.Repository
	orders    order.Repository
	cache     *cache.RedisClient
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewDashboardUseCase(shipments shipment.Repository, orders order.Repository, c *cache.RedisClient, ttl time.Duration, log *zap.Logger) dashboard.UseCase {
	return &dashboardUseCase{
		shipments: shipments,
		orders:    orders,
		cache:     c,
		cacheTTL:  ttl,
		logger:    log,
	}
}

// Stats issues one count query per counter. The counts are display-only and
// deliberately not wrapped in a transaction; concurrent writers can make
// them mutually inconsistent for one refresh cycle.
func (uc *dashboardUseCase) Stats(ctx context.Context) (*dto.Stats, error) {
	var cached dto.Stats
	err := uc.cache.GetJSON(ctx, statsCacheKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		uc.logger.Warn("dashboard cache read failed", zap.Error(err))
	}

	stats := &dto.Stats{}

	if stats.TotalShipments, err = uc.shipments.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.OpenShipments, err = uc.shipments.CountByStatus(ctx, model.ShipmentOpen); err != nil {
		return nil, err
	}
	if stats.OrderedShipments, err = uc.shipments.CountByStatus(ctx, model.ShipmentOrdered); err != nil {
		return nil, err
	}
	if stats.ReceivedShipments, err = uc.shipments.CountByStatus(ctx, model.ShipmentReceived); err != nil {
		return nil, err
	}
	if stats.AmazonStock, err = uc.orders.CountByDestination(ctx, model.DestinationAmazon); err != nil {
		return nil, err
	}
	if stats.InStock, err = uc.orders.CountByDestinationAndStatus(ctx, model.DestinationAmazon, model.OrderInStock); err != nil {
		return nil, err
	}
	if stats.CompanyOrders, err = uc.orders.CountByDestination(ctx, model.DestinationCompany); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = uc.orders.CountByDestinationAndStatus(ctx, model.DestinationCompany, model.OrderPending); err != nil {
		return nil, err
	}

	if err := uc.cache.SetJSON(ctx, statsCacheKey, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("dashboard cache write failed", zap.Error(err))
	}

	return stats, nil
}
