package common

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// ShutdownHook is run after a termination signal and before the HTTP server
// shuts down. Errors are logged and shutdown continues.
type ShutdownHook func(ctx context.Context) error

// RunServerWithShutdown serves until ctx is cancelled or SIGINT/SIGTERM is
// received, then runs the hooks in order and shuts the server down within
// the configured timeouts. A listen failure is returned immediately.
func RunServerWithShutdown(ctx context.Context, server *http.Server, name string, cfg TimeoutConfig, hooks ...ShutdownHook) error {
	hookTimeout := cfg.Hook
	if hookTimeout <= 0 {
		hookTimeout = 5 * time.Second
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("addr", server.Addr).Infof("starting %s", name)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logrus.Infof("shutdown signal received for %s", name)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()

	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(shutdownCtx, hookTimeout)
		if err := h(hCtx); err != nil {
			logrus.WithError(err).Warnf("shutdown hook %d failed", i)
		}
		if errors.Is(hCtx.Err(), context.DeadlineExceeded) {
			logrus.Warnf("shutdown hook %d timed out", i)
		}
		hCancel()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logrus.Infof("%s shutdown complete", name)
	return nil
}

// TimeoutConfig holds server and shutdown timeouts. Values are read from the
// environment as Go durations, for example "15s".
type TimeoutConfig struct {
	ReadHeader time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	Read       time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	Write      time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	Idle       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	Shutdown   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	Hook       time.Duration `env:"HOOK_TIMEOUT" envDefault:"5s"`
}

// NewServerWithTimeouts attaches timeout settings to an existing *http.Server or creates a new one if nil.
func NewServerWithTimeouts(base *http.Server, cfg TimeoutConfig) *http.Server {
	if base == nil {
		base = &http.Server{}
	}
	base.ReadHeaderTimeout = cfg.ReadHeader
	base.ReadTimeout = cfg.Read
	base.WriteTimeout = cfg.Write
	base.IdleTimeout = cfg.Idle
	return base
}
