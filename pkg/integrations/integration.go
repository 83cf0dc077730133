package integrations

import (
	"go.uber.org/zap"

	"github.com/hoplocal/brewdex/pkg/integrations/untappd-web"
	"github.com/hoplocal/brewdex/pkg/model"
)

type Integration interface {
	FindBrewery(name string) ([]model.Brewery, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappdWebIntegration(logger)
	}

	return nil
}
