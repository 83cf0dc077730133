package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/hoplocal/brewdex/configs"
	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".brewdex.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	err = repo.DB.AutoMigrate(
		&model.Brewery{}, &model.Feature{}, &model.FeatureRelationship{},
		&model.SocialMediaPlatform{}, &model.SocialMediaLink{})
	if err != nil {
		return err
	}

	return repo.EnsurePlatforms(context.Background())
}
