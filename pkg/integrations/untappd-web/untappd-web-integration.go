package untappdweb

import (
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const IntegrationName = "untappd_web"

const defaultBaseURL = "https://untappd.com"

type UntappdWebIntegration struct {
	logger  *zap.Logger
	baseURL string
}

func NewUntappdWebIntegration(logger *zap.Logger) *UntappdWebIntegration {
	return &UntappdWebIntegration{logger: logger, baseURL: defaultBaseURL}
}

// NewWithBaseURL points the scraper at an alternate host. Tests use this to
// serve canned pages from a local server.
func NewWithBaseURL(logger *zap.Logger, baseURL string) *UntappdWebIntegration {
	return &UntappdWebIntegration{logger: logger, baseURL: baseURL}
}

func (u *UntappdWebIntegration) newCollector() *colly.Collector {
	return colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)
}
