package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hoplocal/brewdex/pkg/model"
)

// GetOrCreateFeature looks up a feature by name, inserting it first if it does
// not exist. The conditional insert and the lookup are separate statements, but
// the insert is guarded by the unique index so concurrent callers converge on
// the same row instead of racing a check-then-act.
func (r *Repository) GetOrCreateFeature(ctx context.Context, name string) (*model.Feature, error) {
	return getOrCreateFeature(r.DB.WithContext(ctx), name)
}

func getOrCreateFeature(db *gorm.DB, name string) (*model.Feature, error) {
	feature := model.Feature{Name: name}
	if result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&feature); result.Error != nil {
		return nil, result.Error
	}

	if feature.ID == 0 {
		if result := db.Where("name = ?", name).First(&feature); result.Error != nil {
			return nil, result.Error
		}
	}

	return &feature, nil
}

// BatchGetOrCreateFeatures resolves each distinct name to a feature ID,
// creating missing features as it goes.
func (r *Repository) BatchGetOrCreateFeatures(ctx context.Context, names []string) (map[string]uint, error) {
	return batchGetOrCreateFeatures(r.DB.WithContext(ctx), names)
}

func batchGetOrCreateFeatures(db *gorm.DB, names []string) (map[string]uint, error) {
	featureIDs := make(map[string]uint, len(names))

	for _, name := range names {
		if _, done := featureIDs[name]; done {
			continue
		}

		feature, err := getOrCreateFeature(db, name)
		if err != nil {
			return nil, err
		}

		featureIDs[name] = feature.ID
	}

	return featureIDs, nil
}

// AddFeatures registers a list of feature names. Names that already exist are
// returned as-is, so the call is idempotent.
func (r *Repository) AddFeatures(ctx context.Context, names []string) ([]*model.Feature, error) {
	features := make([]*model.Feature, 0, len(names))
	db := r.DB.WithContext(ctx)

	for _, name := range names {
		feature, err := getOrCreateFeature(db, name)
		if err != nil {
			return nil, err
		}

		features = append(features, feature)
	}

	return features, nil
}

// GetBreweryFeatures returns the feature names tagged on a brewery. A brewery
// with no features yields an empty slice.
func (r *Repository) GetBreweryFeatures(ctx context.Context, breweryID uint) ([]string, error) {
	names := make([]string, 0)

	result := r.DB.WithContext(ctx).Table("brewery_features").
		Joins("INNER JOIN brewery_feature_relationships bfr ON brewery_features.id = bfr.feature_id").
		Where("bfr.brewery_id = ?", breweryID).
		Order("brewery_features.name asc").
		Pluck("brewery_features.name", &names)
	if result.Error != nil {
		return nil, result.Error
	}

	return names, nil
}
