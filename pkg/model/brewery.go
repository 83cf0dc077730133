package model

import (
	"gorm.io/gorm"
)

type Brewery struct {
	gorm.Model
	Name       string `gorm:"not null"`
	Address    string `gorm:"not null"`
	City       string
	Province   string
	PostalCode string
	Phone      string
	WebsiteURL string
	Country    string
	MenuURL    string

	Features    []Feature         `gorm:"many2many:brewery_feature_relationships;"`
	SocialMedia []SocialMediaLink `gorm:"foreignKey:BreweryID"`
}

type Feature struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

func (Feature) TableName() string {
	return "brewery_features"
}

// FeatureRelationship is the join row between a brewery and a feature. The
// composite primary key makes re-adding an existing pair a conflict rather
// than a duplicate row.
type FeatureRelationship struct {
	BreweryID uint `gorm:"primaryKey"`
	FeatureID uint `gorm:"primaryKey"`
}

func (FeatureRelationship) TableName() string {
	return "brewery_feature_relationships"
}
