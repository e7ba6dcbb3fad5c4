package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/ailearn/internal/api"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the learning API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pace, _ := cmd.Flags().GetBool("pacing")
		rt, err := openRuntime(ctx, pace)
		if err != nil {
			return err
		}
		defer rt.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		every, _ := cmd.Flags().GetDuration("snapshot-every")

		handler := api.NewAppHandler(api.AppDeps{
			Progress:  rt.svc.Progress,
			Catalog:   rt.svc.Catalog,
			Tutor:     rt.svc.Tutor,
			Evaluator: rt.svc.Evaluator,
			Pacer:     rt.svc.Pacer,
			Events:    rt.svc.Events,
			Logger:    logger,
		})
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext: func(_ net.Listener) context.Context {
				return ctx
			},
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			fmt.Fprintf(cmd.OutOrStdout(), "ailearn listening on %s\n", addr)
			logger.Info("http server started", zap.String("addr", addr), zap.String("backend", cfg.Backend))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			fmt.Fprintln(cmd.OutOrStdout(), "shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		if every > 0 {
			g.Go(func() error {
				ticker := time.NewTicker(every)
				defer ticker.Stop()
				for {
					select {
					case <-gctx.Done():
						return nil
					case <-ticker.C:
						if err := rt.snapshot(gctx); err != nil {
							logger.Warn("periodic snapshot", zap.Error(err))
						}
					}
				}
			})
		}

		err = g.Wait()
		if serr := rt.snapshot(context.Background()); serr != nil {
			logger.Warn("final snapshot", zap.Error(serr))
		}
		return err
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	serveCmd.Flags().Bool("pacing", false, "Apply the simulated generation and evaluation delays")
	serveCmd.Flags().Duration("snapshot-every", 10*time.Minute, "Snapshot interval; 0 disables periodic snapshots")
}
