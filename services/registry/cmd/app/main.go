package main

import (
	"solraise/pkg/config"
	"solraise/services/registry/internal/app"

	_ "solraise/docs" // Swagger docs
)

// @title           Registry Service API
// @version         1.0
// @description     Wallet registration and user profiles for the SolRaise donation platform

// @host      localhost:8001
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
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
