package main

import (
	"portfolio/pkg/config"
	app "portfolio/services/api/internal/app"
)

// @title           Portfolio API
// @version         1.0
// @description     Content, votes and admin endpoints for the portfolio site

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey AdminSession
// @in header
// @name Authorization
// @description Session token from /admin/check-password, sent as the admin_session cookie or as "Bearer <token>".

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		panic("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
