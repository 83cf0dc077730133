package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hoplocal/brewdex/configs"
	"github.com/hoplocal/brewdex/pkg/integrations"
)

type LookupCmd struct {
	ConfigFile string `default:".brewdex.toml" help:"Path to config file" short:"c"`
	Name       string `arg:""                  help:"Brewery name to search for"`
}

func (l *LookupCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(l.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	for _, integrationName := range conf.Integrations.Brewery {
		integration := integrations.GetIntegration(integrationName, logger)
		if integration == nil {
			logger.Warn("unknown integration", zap.String("integration", integrationName))

			continue
		}

		candidates, err := integration.FindBrewery(l.Name)
		if err != nil {
			logger.Error("lookup failed", zap.String("integration", integrationName), zap.Error(err))

			continue
		}

		for _, candidate := range candidates {
			location := fmt.Sprintf("%s, %s, %s", candidate.City, candidate.Province, candidate.Country)
			if len(candidate.SocialMedia) > 0 {
				location += " " + candidate.SocialMedia[0].URL
			}

			fmt.Printf("%s: %s (%s)\n", integrationName, candidate.Name, location)
		}
	}

	return nil
}
