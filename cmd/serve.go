package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blogem/useradmin/config"
	"github.com/blogem/useradmin/controllers"
)

const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := controllers.NewControllers(a.services, logger)
		router, err := controllers.NewRouter(ctrl, controllers.RouterOptions{
			Logger:          logger,
			Metrics:         a.metrics,
			SecureCookies:   appConfig.UseHTTPS,
			SessionLifetime: appConfig.SessionLifetime,
		})
		if err != nil {
			return err
		}

		server := &http.Server{
			Addr:              net.JoinHostPort("", appConfig.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server starting",
				slog.String("addr", "http://localhost:"+appConfig.Port),
				slog.String("database", appConfig.DatabasePath),
			)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	_ = viper.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
}
