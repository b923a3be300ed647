package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/handler"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := viper.GetString("server.addr")
			h := handler.New(engine, logger)
			server := &fasthttp.Server{
				Handler: h.HandleRequest,
				Name:    "rpplan",
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", zap.String("addr", addr))
				errCh <- server.ListenAndServe(addr)
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				return server.Shutdown()
			}
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
