package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/platform"
)

// SocialMediaEntry pairs an existing brewery with the URLs to attach to it.
type SocialMediaEntry struct {
	BreweryID uint
	URLs      []string
}

// EnsurePlatforms seeds the platform rows the classifier maps URLs onto. On a
// fresh database the insert order fixes the IDs the classifier assumes;
// existing rows are left untouched.
func (r *Repository) EnsurePlatforms(ctx context.Context) error {
	platforms := make([]model.SocialMediaPlatform, 0, len(platform.All()))
	for _, p := range platform.All() {
		platforms = append(platforms, model.SocialMediaPlatform{Name: p.String()})
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&platforms)

	return result.Error
}

func (r *Repository) AddSocialMediaPlatform(ctx context.Context, name string) (*model.SocialMediaPlatform, error) {
	p := model.SocialMediaPlatform{Name: name}

	if result := r.DB.WithContext(ctx).Create(&p); result.Error != nil {
		return nil, result.Error
	}

	return &p, nil
}

// CreateSocialMediaLinks classifies each URL and stores the ones that match a
// known platform. URLs that match nothing are skipped, not persisted, and the
// returned IDs cover only the rows actually created.
func (r *Repository) CreateSocialMediaLinks(ctx context.Context, breweryID uint, urls []string) ([]uint, error) {
	links := make([]model.SocialMediaLink, 0, len(urls))

	for _, url := range urls {
		p, ok := platform.Classify(url)
		if !ok {
			r.Logger.Warn("skipping unrecognized social media url",
				zap.Uint("brewery_id", breweryID), zap.String("url", url))

			continue
		}

		links = append(links, model.SocialMediaLink{BreweryID: breweryID, PlatformID: uint(p), URL: url})
	}

	if len(links) == 0 {
		return []uint{}, nil
	}

	if result := r.DB.WithContext(ctx).Create(&links); result.Error != nil {
		return nil, result.Error
	}

	ids := make([]uint, 0, len(links))
	for index := range links {
		ids = append(ids, links[index].ID)
	}

	return ids, nil
}

// BatchCreateSocialMediaLinks flattens all (brewery, url) pairs into a single
// multi-row insert. It reports how many rows were created and how many URLs
// were skipped because no platform matched.
func (r *Repository) BatchCreateSocialMediaLinks(ctx context.Context, entries []SocialMediaEntry) (int64, int, error) {
	var (
		links   []model.SocialMediaLink
		skipped int
	)

	for _, entry := range entries {
		for _, url := range entry.URLs {
			p, ok := platform.Classify(url)
			if !ok {
				r.Logger.Warn("skipping unrecognized social media url",
					zap.Uint("brewery_id", entry.BreweryID), zap.String("url", url))

				skipped++

				continue
			}

			links = append(links, model.SocialMediaLink{BreweryID: entry.BreweryID, PlatformID: uint(p), URL: url})
		}
	}

	if len(links) == 0 {
		return 0, skipped, nil
	}

	result := r.DB.WithContext(ctx).Create(&links)
	if result.Error != nil {
		return 0, skipped, result.Error
	}

	return result.RowsAffected, skipped, nil
}

// AddSocialMediaToBreweries attaches social media URLs to existing breweries,
// dropping entries with no URLs before touching the database.
func (r *Repository) AddSocialMediaToBreweries(ctx context.Context, entries []SocialMediaEntry) (int64, int, error) {
	withURLs := make([]SocialMediaEntry, 0, len(entries))

	for _, entry := range entries {
		if len(entry.URLs) > 0 {
			withURLs = append(withURLs, entry)
		}
	}

	if len(withURLs) == 0 {
		return 0, 0, nil
	}

	return r.BatchCreateSocialMediaLinks(ctx, withURLs)
}

// GetBrewerySocialMedia returns a brewery's links with their platforms joined.
func (r *Repository) GetBrewerySocialMedia(ctx context.Context, breweryID uint) ([]*model.SocialMediaLink, error) {
	links := make([]*model.SocialMediaLink, 0)

	result := r.DB.WithContext(ctx).
		Joins("Platform").
		Where("brewery_social_media.brewery_id = ?", breweryID).
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}
