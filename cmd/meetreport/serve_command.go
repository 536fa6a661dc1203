package main

import (
	"context"
	"errors"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"meetreport/internal/api"
	"meetreport/internal/logging"
	"meetreport/internal/preflight"
	"meetreport/internal/services"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve timeline and report compilation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(bind) != "" {
				cfg.Server.Bind = strings.TrimSpace(bind)
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			if failed := preflight.Failed(preflight.RunAll(cmd.Context(), cfg, preflight.Options{CheckBind: true})); len(failed) > 0 {
				for _, r := range failed {
					logging.ErrorWithContext(logger, "preflight check failed", "preflight_failed",
						logging.String("check", r.Name),
						logging.String("detail", r.Detail),
					)
				}
				return services.Wrap(services.ErrConfiguration, "serve", "preflight", failed[0].Name+": "+failed[0].Detail, nil)
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			server := api.New(cfg, logger)
			logger.Info("meetreport serve starting",
				logging.String("bind", cfg.Server.Bind),
				logging.String("config", ctx.configPath),
			)
			if err := server.Listen(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (default from config)")
	return cmd
}
