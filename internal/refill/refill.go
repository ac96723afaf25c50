// Package refill runs the automatic reorder scheduler. On each tick it
// scans the catalog for products at or below their threshold and places
// a replacement order unless one is already open.
package refill

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/models"
)

const defaultCron = "*/5 * * * *"

// Start launches the scheduler when enabled. Returns a cancel func.
func Start(ctx context.Context, c *catalog.Catalog, enabled bool, cronExpr string) (context.CancelFunc, error) {
	if !enabled {
		logger.Info("refill_disabled")
		return func() {}, nil
	}
	if cronExpr == "" {
		cronExpr = defaultCron
	}
	if !gronx.IsValid(cronExpr) {
		logger.Error("refill_invalid_cron", "cron", cronExpr)
		return nil, fmt.Errorf("invalid refill cron expression: %s", cronExpr)
	}

	logger.Info("refill_enabled", "cron", cronExpr)
	ctx2, cancel := context.WithCancel(ctx)
	go runScheduler(ctx2, c, cronExpr)
	return cancel, nil
}

// runScheduler computes the next tick for the configured cron expression
// with gronx and sleeps until then, supporting full cron syntax.
func runScheduler(ctx context.Context, c *catalog.Catalog, cronExpr string) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("refill_scheduler_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(cronExpr, now, false)
		if err != nil {
			logger.Error("refill_nexttick_failed", "cron", cronExpr, "error", err)
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				logger.Info("refill_scheduler_stopping")
				return
			}
			continue
		}

		wait := time.Until(next)
		if wait <= 0 {
			RunOnce(c)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				logger.Info("refill_scheduler_stopping")
				return
			}
			continue
		}

		select {
		case <-time.After(wait):
			RunOnce(c)
		case <-ctx.Done():
			logger.Info("refill_scheduler_stopping")
			return
		}
	}
}

// RunOnce performs a single refill sweep. Exported so an admin trigger
// or a test can run a sweep without the scheduler.
func RunOnce(c *catalog.Catalog) {
	sweeps.Inc()
	for _, p := range c.ListProducts(catalog.ProductFilters{LowStock: true}) {
		if c.HasOpenOrder(p.ID) {
			continue
		}
		// Reorder enough to clear the threshold twice over.
		qty := p.Threshold * 2
		if qty < 1 {
			qty = 1
		}
		o := c.CreateOrder(models.Order{
			ProductID:  p.ID,
			Quantity:   qty,
			SupplierID: p.SupplierID,
		})
		c.PushNotification(models.Notification{
			Type:      models.NotifyLowStock,
			Title:     "Low Stock Alert",
			Message:   fmt.Sprintf("%s is low on stock (%d left). Auto-refill order #%d placed.", p.Name, p.Stock, o.ID),
			ProductID: p.ID,
			OrderID:   o.ID,
		})
		ordersPlaced.Inc()
		logger.Info("refill_order_placed", "product", p.ID, "order", o.ID, "quantity", qty)
	}
}
