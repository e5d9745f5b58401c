package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/campuselect/election-api/internal/api"
	"github.com/campuselect/election-api/internal/config"
	"github.com/campuselect/election-api/internal/logger"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/store"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	config.Watch(func(fresh *config.AppConfig) {
		zap.L().Info("config file reloaded", zap.String("environment", fresh.API.Environment))
	})

	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = conf.Store.Path
	}
	kv, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open store -> %w", err)
	}
	defer kv.Close()

	if err = dao.SeedElectionState(kv); err != nil {
		return fmt.Errorf("failed to seed election state -> %w", err)
	}

	s := api.NewServer(conf, kv)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
