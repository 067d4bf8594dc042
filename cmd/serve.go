package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/saherflow/flowportal/internal/assets"
	"github.com/saherflow/flowportal/internal/landing"
	"github.com/saherflow/flowportal/internal/live"
	"github.com/saherflow/flowportal/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the landing page server",
	Long:  `Starts the HTTP server that renders the landing page and runs one live carousel and theme session per page view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		slides, err := resolveSlides(cfg)
		if err != nil {
			return err
		}

		page, err := landing.NewPage(cfg.Content, cfg.Links)
		if err != nil {
			return fmt.Errorf("building page: %w", err)
		}

		handler, err := live.NewHandler(page, liveOptions(cfg, slides))
		if err != nil {
			return fmt.Errorf("creating live handler: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		})
		handler.RegisterRoutes(srv.Router())
		assets.RegisterRoutes(srv.Router(), cfg.Slideshow.AssetDir)
		srv.OnShutdown(handler.Close)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "flowportal v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Slides: %d (every %s)\n", len(slides), cfg.Slideshow.Interval())
		if verbose {
			for i, s := range slides {
				fmt.Fprintf(os.Stderr, "    [%d] %s\n", i, s)
			}
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
