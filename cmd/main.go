package main

import (
	"go.uber.org/zap"

	"github.com/eudoxia0/zetanom/config"
	"github.com/eudoxia0/zetanom/database"
	"github.com/eudoxia0/zetanom/logger"
	"github.com/eudoxia0/zetanom/routes"
)

func main() {
	logger.Init()
	defer logger.Close()

	cfg := config.Load()
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	r := routes.SetupRouter(db)
	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("driver", cfg.DBDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
