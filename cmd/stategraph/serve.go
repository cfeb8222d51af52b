package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/uhaseeb85/stategraph"
	"github.com/uhaseeb85/stategraph/internal/logging"
	"github.com/uhaseeb85/stategraph/internal/presentation/tui"
	httpAdapter "github.com/uhaseeb85/stategraph/pkg/adapters/http"
	"github.com/uhaseeb85/stategraph/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis server",
	Long: `Starts the analyzer in server mode, exposing the graph, path,
partition, diff and snapshot operations as a JSON API over HTTP.
Prometheus metrics are served on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		port, _ := cmd.Flags().GetString("port")
		level, _ := cmd.Flags().GetString("log-level")

		logger := logging.New(parseLogLevel(level))
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		analyzer, err := newAnalyzer(cmd,
			stategraph.WithMetrics(metrics),
		)
		if err != nil {
			fatal("Error initializing: %v", err)
		}
		store := newStore(cmd)

		handler, err := httpAdapter.NewHandler(analyzer, store,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(promhttp.Handler()),
		)
		if err != nil {
			fatal("Error building handler: %v", err)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner()
			fmt.Printf("Listening on %s\n", srv.Addr)
			fmt.Printf("Serving graph from: %s\n", dir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
