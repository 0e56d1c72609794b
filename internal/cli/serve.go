package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stockroom/pagenav/internal/config"
	"github.com/stockroom/pagenav/internal/inventory"
	"github.com/stockroom/pagenav/internal/logging"
	"github.com/stockroom/pagenav/internal/server"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// serveParams holds the flags of the serve command.
type serveParams struct {
	addr  string
	files []string
}

// NewServeCmd creates the serve command, which exposes the pagination API over HTTP.
func NewServeCmd() *cobra.Command {
	var params serveParams

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pagination HTTP API",
		Long: `Starts an HTTP server with the pagination endpoints under the configured API
version prefix:

  GET  /v1/pagination?current=&total=&delta=
  POST /v1/pagination/change
  GET  /v1/items?page=&pageSize=&sort=&warehouse=&status=
  GET  /healthz

The items endpoint pages over the listing files given with --file. The server stops
gracefully on SIGINT or SIGTERM.`,
		Example: `  # Serve a listing on the default address
  pagenav serve --file stock.yaml

  # Serve on another port
  pagenav serve --file stock.yaml --addr 127.0.0.1:9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				params.addr = config.GetGlobalConfig().Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return executeServe(ctx, cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.addr, "addr", config.DefaultAddr, "listen address (default from config)")
	cmd.Flags().StringSliceVarP(&params.files, "file", "f", nil, "listing file (YAML or JSON) served by /items; repeatable")

	return cmd
}

// newEngine loads the listing and builds the HTTP engine from the global configuration.
func newEngine(ctx context.Context, files []string) (*gin.Engine, error) {
	var items []inventory.Item
	if len(files) > 0 {
		var err error
		if items, err = inventory.LoadFiles(ctx, files...); err != nil {
			return nil, err
		}
	}

	cfg := config.GetGlobalConfig()
	gin.SetMode(gin.ReleaseMode)

	return server.NewEngine(server.EngineConfig{
		Lister:     server.StaticLister(items),
		APIVersion: cfg.Server.APIVersion,
		PageSize:   cfg.Pagination.PageSize,
		Delta:      cfg.Pagination.Delta,
		Logger:     logging.ComponentLogger(*logging.FromContext(ctx), "server"),
	})
}

func executeServe(ctx context.Context, cmd *cobra.Command, params serveParams) error {
	engine, err := newEngine(ctx, params.files)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", params.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", params.addr, err)
	}

	srv := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log := logging.FromContext(ctx)
	log.Info().Str("component", "server").Str("addr", ln.Addr().String()).Msg("serving")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if serveErr := srv.Serve(ln); !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		log.Info().Str("component", "server").Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
