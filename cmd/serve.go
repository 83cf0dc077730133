package cmd

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hoplocal/brewdex/configs"
	"github.com/hoplocal/brewdex/pkg/repository"
	"github.com/hoplocal/brewdex/pkg/server"
)

type ServeCmd struct {
	ConfigFile string `default:".brewdex.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig = zap.NewDevelopmentConfig()
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if !ctx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(server.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowHeaders: []string{"accept", "authorization", "content-type", "origin", "user-agent"},
		MaxAge:       24 * time.Hour,
	}))

	server.NewServer(repo, repo, repo, logger).Routes(router)

	address := fmt.Sprintf(":%d", conf.Server.Port)
	logger.Info("starting server", zap.String("address", address))

	err = router.Run(address)
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}
