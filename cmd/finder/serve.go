package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DFE-Digital/fips-v4/pkg/common"
	"github.com/DFE-Digital/fips-v4/pkg/config"
	"github.com/DFE-Digital/fips-v4/pkg/messaging"
	"github.com/DFE-Digital/fips-v4/pkg/server"
	"github.com/DFE-Digital/fips-v4/pkg/storage"
	"github.com/DFE-Digital/fips-v4/pkg/tracking"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	ds := newStorage(cfg)
	f, err := newFinder(cfg, ds)
	if err != nil {
		return err
	}

	ws := &server.WebServer{
		Finder:          f,
		Versions:        ds,
		AllowedOrigins:  cfg.AllowedOrigins,
		EnableProfiling: cfg.EnableProfiling,
	}
	hooks := make([]common.ShutdownHook, 0)

	if cfg.WatchFiles && ds.Cache() != nil {
		watcher, err := storage.NewWatcher(cfg.DataDir, ds.Cache())
		if err != nil {
			return err
		}
		watcher.Start(ctx)
		hooks = append(hooks, func(ctx context.Context) error {
			return watcher.Close()
		})
	}

	if cfg.RedisUrl != "" {
		cache := server.NewResponseCache(cfg.RedisUrl, cfg.RedisPassword, cfg.RedisDb, cfg.CacheTtl)
		if err := cache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("redis not reachable, serving without response cache")
			cache.Close()
		} else {
			ws.Cache = cache
			hooks = append(hooks, func(ctx context.Context) error {
				return cache.Close()
			})
		}
	}

	if cfg.RabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(cfg.RabbitUrl, cfg.RabbitPrefix)
		if err != nil {
			logrus.WithError(err).Warn("rabbit not reachable, serving without tracking")
		} else {
			ws.Tracking = trk
			if cache := ds.Cache(); cache != nil {
				err = messaging.ListenForDataChanges(trk.Connection(), cfg.RabbitPrefix, func(msg messaging.DataChangedMessage) {
					for _, name := range msg.Files {
						cache.Invalidate(ds.GetFileName(name))
					}
					logrus.WithField("files", msg.Files).Info("data files changed")
				})
				if err != nil {
					logrus.WithError(err).Warn("could not listen for data changes")
				}
			}
			hooks = append(hooks, func(ctx context.Context) error {
				return trk.Close()
			})
		}
	}

	srv := common.NewServerWithTimeouts(nil, cfg.Timeouts)
	srv.Addr = cfg.ListenAddress
	srv.Handler = ws.Router()
	return common.RunServerWithShutdown(ctx, srv, "fips finder", cfg.Timeouts, hooks...)
}
