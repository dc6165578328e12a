package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirphiladam2/Actionable-sub001/internal/authcallback"
	"github.com/amirphiladam2/Actionable-sub001/internal/config"
	"github.com/amirphiladam2/Actionable-sub001/internal/identity"
	"github.com/amirphiladam2/Actionable-sub001/internal/logging"
	"github.com/amirphiladam2/Actionable-sub001/internal/notify"
)

func newAuthCmd(opts *rootOptions) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Resolve sign-in callbacks",
	}
	authCmd.AddCommand(newAuthResolveCmd(opts))
	return authCmd
}

func newAuthResolveCmd(opts *rootOptions) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "resolve [url]",
		Short: "Resolve an OAuth callback URL into a session",
		Long: `Resolves an OAuth redirect URL using the configured identity provider.

Without a URL argument, callback URLs are read from stdin one per line and
the first one is resolved. Waiting is bounded by --wait (auth.listen_window).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := logging.Setup(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer logger.Sync()

			if cfg.Identity.BaseURL == "" {
				return fmt.Errorf("identity.base_url not configured")
			}
			resolver := authcallback.NewResolverFor(identity.NewClient(cfg.Identity), logger.Named("auth"))

			if !cmd.Flags().Changed("wait") {
				wait = cfg.Auth.ListenWindow
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var initial string
			var events <-chan string
			if len(args) == 1 {
				initial = args[0]
			} else {
				events = readLines(ctx, cmd.InOrStdin())
			}

			out := authcallback.Await(ctx, resolver, initial, events, wait)

			notifier := notify.NewLogNotifier(logger)
			if out.Success {
				notifier.Notify(ctx, notify.Success("Signed in", out.Session.Email))
			} else {
				notifier.Notify(ctx, notify.Error("Sign-in failed", out.Error))
			}

			format := opts.output
			if format == "table" {
				format = "yaml"
			}
			if err := printData(cmd.OutOrStdout(), format, out); err != nil {
				return err
			}
			if !out.Success {
				return fmt.Errorf("auth callback failed: %s", out.Error)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", config.DefaultConfig().Auth.ListenWindow, "How long to wait for a callback URL on stdin (0 waits forever)")
	return cmd
}

// readLines streams lines from r until EOF or ctx is done
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
