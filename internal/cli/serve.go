package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amirphiladam2/Actionable-sub001/internal/authcallback"
	"github.com/amirphiladam2/Actionable-sub001/internal/identity"
	"github.com/amirphiladam2/Actionable-sub001/internal/notify"
	"github.com/amirphiladam2/Actionable-sub001/internal/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			if a.cfg.Server.Mode != "" {
				gin.SetMode(a.cfg.Server.Mode)
			}

			deps := web.Deps{
				Store:         a.store,
				Notifier:      notify.NewLogNotifier(a.logger),
				Engine:        a.engine,
				Logger:        a.logger.Named("web"),
				Location:      a.engine.Location,
				UpcomingLimit: a.cfg.Tasks.UpcomingLimit,
				DefaultSort:   a.cfg.Tasks.DefaultSort,
				DefaultOrder:  a.cfg.Tasks.DefaultOrder,
			}
			if a.cfg.Identity.BaseURL != "" {
				deps.Resolver = authcallback.NewResolverFor(identity.NewClient(a.cfg.Identity), a.logger.Named("auth"))
			} else {
				a.logger.Warn("identity.base_url not configured; auth callback endpoint disabled")
			}

			// Handle shutdown signals
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("actionable API starting", zap.String("addr", addr), zap.String("db", a.cfg.Storage.DBPath))
			return web.NewServer(deps).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default server.addr)")
	return cmd
}

