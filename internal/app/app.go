// Package app is the composition root: it opens the store, wires the
// notifier, services and HTTP surface, and runs the server until the
// context is cancelled.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"smartgrocery/pkg/api"
	"smartgrocery/pkg/auth"
	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/config"
	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/messaging"
	"smartgrocery/pkg/notify"
	"smartgrocery/pkg/store"

	"smartgrocery/internal/refill"
)

// Run starts the server and blocks until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, eff config.Effective) error {
	cfg := eff.Config

	notifier := notify.New(ctx, cfg.Redis.URL)
	st, err := store.Open(eff.DBPath, notifier)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Error("store_close_failed", "error", cerr)
		}
		if cerr := notifier.Close(); cerr != nil {
			logger.Error("notifier_close_failed", "error", cerr)
		}
	}()

	svc := messaging.NewService(st, notifier)
	cat := catalog.New()
	limiter := auth.NewLimiterPool(cfg.Auth.RateLimit.RPS, cfg.Auth.RateLimit.Burst)

	stopRefill, err := refill.Start(ctx, cat, cfg.Refill.Enabled, cfg.Refill.Cron)
	if err != nil {
		return err
	}
	defer stopRefill()

	srv := &http.Server{
		Addr: eff.Addr,
		Handler: api.New(api.Deps{
			Catalog:      cat,
			Messaging:    svc,
			LoginLimiter: limiter,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("http_listening", "addr", eff.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting_down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			logger.Error("http_shutdown_failed", "error", err)
			_ = srv.Close()
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
