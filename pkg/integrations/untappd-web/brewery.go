package untappdweb

import (
	"encoding/json"
	"strconv"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/platform"
)

type BreweryJSON struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		BestRating  string  `json:"bestRating"`
		ReviewCount int    `json:"reviewCount"`
	} `json:"aggregateRating"`
	Address struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		AddressCountry  string `json:"addressCountry"`
	} `json:"address"`
}

// FindBrewery searches Untappd for breweries matching the given name. Each
// candidate carries the scraped address fields plus its Untappd page URL as a
// pending social media link, so the caller can persist it like any other link.
func (u *UntappdWebIntegration) FindBrewery(name string) ([]model.Brewery, error) {
	collector := u.newCollector()

	var (
		errs    error
		results []model.Brewery
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		ratingString := element.ChildAttr(".rating > div.caps", "data-rating")
		rating, _ := strconv.ParseFloat(ratingString, 64)

		if rating > 0.0 {
			breweryURI := element.ChildAttr(".name > a", "href")

			brewery, err := u.getBreweryFromURI(breweryURI, collector.Clone())
			if multierr.AppendInto(&errs, err) {
				return
			}

			results = append(results, brewery)
		}
	})

	multierr.AppendInto(&errs, collector.Visit(u.baseURL+"/search?q=/"+name+"&type=brewery"))

	return results, errs
}

func (u *UntappdWebIntegration) getBreweryFromURI(uri string, collector *colly.Collector) (model.Brewery, error) {
	var (
		errs    error
		brewery model.Brewery
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var scraped BreweryJSON
		_ = json.Unmarshal([]byte(element.Text), &scraped)

		brewery.Name = scraped.Name
		brewery.Address = scraped.Address.StreetAddress
		brewery.City = scraped.Address.AddressLocality
		brewery.Province = scraped.Address.AddressRegion
		brewery.Country = scraped.Address.AddressCountry
	})

	collector.OnHTML("head meta[property='og:url']", func(element *colly.HTMLElement) {
		pageURL := element.Attr("content")

		if _, ok := platform.Classify(pageURL); !ok {
			u.logger.Warn("brewery page url did not classify as a known platform", zap.String("url", pageURL))

			return
		}

		brewery.SocialMedia = append(brewery.SocialMedia, model.SocialMediaLink{
			PlatformID: uint(platform.Untappd),
			URL:        pageURL,
		})
	})

	multierr.AppendInto(&errs, collector.Visit(u.baseURL+uri))

	return brewery, errs
}
