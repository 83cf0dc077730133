package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hoplocal/brewdex/pkg/model"
)

var (
	ErrBreweryNotFound = errors.New("brewery not found")
	ErrInvalidField    = errors.New("invalid update field")
	ErrBulkImport      = errors.New("bulk brewery import failed")
)

// BreweryInput is one record of a bulk import: the brewery row itself plus the
// feature names to tag it with once its ID exists.
type BreweryInput struct {
	Brewery  model.Brewery
	Features []string
}

// allowedUpdateColumns is the closed set of columns a partial update may touch.
// Update keys are matched against this list and bound as parameters; they are
// never interpolated into the statement.
var allowedUpdateColumns = map[string]bool{
	"name":        true,
	"address":     true,
	"city":        true,
	"province":    true,
	"postal_code": true,
	"phone":       true,
	"website_url": true,
	"country":     true,
	"menu_url":    true,
}

func (r *Repository) GetAllBreweries(ctx context.Context) ([]*model.Brewery, error) {
	breweries := make([]*model.Brewery, 0)

	result := r.DB.WithContext(ctx).
		Preload("Features").
		Preload("SocialMedia.Platform").
		Order("name asc").
		Find(&breweries)
	if result.Error != nil {
		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error) {
	var brewery model.Brewery

	result := r.DB.WithContext(ctx).
		Preload("Features").
		Preload("SocialMedia.Platform").
		First(&brewery, breweryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreweryNotFound
		}

		return nil, result.Error
	}

	return &brewery, nil
}

func (r *Repository) CreateBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error) {
	if result := r.DB.WithContext(ctx).Create(&brewery); result.Error != nil {
		return nil, result.Error
	}

	return &brewery, nil
}

// UpdateBrewery applies a partial update. Keys outside the known column set
// are rejected, and an empty update degrades to a plain read of the row.
func (r *Repository) UpdateBrewery(ctx context.Context, breweryID uint, updates map[string]any) (*model.Brewery, error) {
	for column := range updates {
		if !allowedUpdateColumns[column] {
			return nil, ErrInvalidField
		}
	}

	if len(updates) == 0 {
		return r.GetBreweryByID(ctx, breweryID)
	}

	result := r.DB.WithContext(ctx).Model(&model.Brewery{}).Where("id = ?", breweryID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrBreweryNotFound
	}

	return r.GetBreweryByID(ctx, breweryID)
}

// DeleteBrewery removes a brewery by ID. Deleting an ID that does not exist is
// not an error.
func (r *Repository) DeleteBrewery(ctx context.Context, breweryID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Brewery{}, breweryID)

	return result.Error
}

// BulkCreateBreweries imports a batch of breweries and their feature tags in
// one transaction. Brewery rows go in first, in input order; feature names are
// then resolved across the whole batch and all relationship rows are written
// in a single insert that ignores pairs that already exist. Any failure rolls
// the whole batch back, so no partial import is ever visible.
func (r *Repository) BulkCreateBreweries(ctx context.Context, inputs []BreweryInput) ([]*model.Brewery, error) {
	type pendingTags struct {
		breweryID uint
		features  []string
	}

	created := make([]*model.Brewery, 0, len(inputs))

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pending := make([]pendingTags, 0, len(inputs))

		for index := range inputs {
			brewery := inputs[index].Brewery
			brewery.Features = nil
			brewery.SocialMedia = nil

			if result := tx.Create(&brewery); result.Error != nil {
				return result.Error
			}

			created = append(created, &brewery)

			if len(inputs[index].Features) > 0 {
				pending = append(pending, pendingTags{breweryID: brewery.ID, features: inputs[index].Features})
			}
		}

		if len(pending) == 0 {
			return nil
		}

		union := make([]string, 0)
		for _, tags := range pending {
			union = append(union, tags.features...)
		}

		featureIDs, err := batchGetOrCreateFeatures(tx, union)
		if err != nil {
			return err
		}

		relationships := make([]model.FeatureRelationship, 0, len(union))

		for _, tags := range pending {
			for _, name := range tags.features {
				relationships = append(relationships, model.FeatureRelationship{
					BreweryID: tags.breweryID,
					FeatureID: featureIDs[name],
				})
			}
		}

		if result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&relationships); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		r.Logger.Error("bulk brewery import rolled back",
			zap.Int("breweries", len(inputs)), zap.Error(err))

		return nil, ErrBulkImport
	}

	return created, nil
}
