package cmd

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/hoplocal/brewdex/configs"
	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/repository"
)

type ImportCmd struct {
	ConfigFile string `default:".brewdex.toml" help:"Path to config file" short:"c"`
	File       string `arg:""                  help:"JSON file of brewery records to import"`
}

type importRecord struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	PostalCode  string   `json:"postal_code"`
	Phone       string   `json:"phone"`
	WebsiteURL  string   `json:"website_url"`
	Country     string   `json:"country"`
	MenuURL     string   `json:"menu_url"`
	BreweryType []string `json:"brewery_type"`
	SocialMedia []string `json:"social_media"`
}

func (i *ImportCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	data, err := os.ReadFile(i.File)
	if err != nil {
		logger.Error("error reading import file", zap.String("file", i.File), zap.Error(err))

		return err
	}

	var records []importRecord
	if err = json.Unmarshal(data, &records); err != nil {
		logger.Error("error parsing import file", zap.String("file", i.File), zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	inputs := make([]repository.BreweryInput, 0, len(records))
	for _, record := range records {
		inputs = append(inputs, repository.BreweryInput{
			Brewery: model.Brewery{
				Name:       record.Name,
				Address:    record.Address,
				City:       record.City,
				Province:   record.Province,
				PostalCode: record.PostalCode,
				Phone:      record.Phone,
				WebsiteURL: record.WebsiteURL,
				Country:    record.Country,
				MenuURL:    record.MenuURL,
			},
			Features: record.BreweryType,
		})
	}

	ctx := context.Background()

	breweries, err := repo.BulkCreateBreweries(ctx, inputs)
	if err != nil {
		logger.Error("import failed", zap.Error(err))

		return err
	}

	entries := make([]repository.SocialMediaEntry, 0, len(breweries))
	for index, brewery := range breweries {
		entries = append(entries, repository.SocialMediaEntry{
			BreweryID: brewery.ID,
			URLs:      records[index].SocialMedia,
		})
	}

	created, skipped, err := repo.AddSocialMediaToBreweries(ctx, entries)
	if err != nil {
		logger.Error("error attaching social media", zap.Error(err))

		return err
	}

	logger.Info("import complete",
		zap.Int("breweries", len(breweries)),
		zap.Int64("social_media_created", created),
		zap.Int("social_media_skipped", skipped))

	return nil
}
