package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-platform/cmd/bootstrap"

	"go.uber.org/fx"
)

func init() {
	bootstrap.SetGinMode()
}

// @title           identity-service
// @version         1.0
// @description     User registration, login and token issuing

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.WithServiceName("identity"),
		bootstrap.IdentityModule,
		bootstrap.ServerModule,
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	// The log shipper flushes inside this window.
	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
}
