package model

import "gorm.io/gorm"

type SocialMediaPlatform struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

type SocialMediaLink struct {
	gorm.Model
	BreweryID  uint
	PlatformID uint
	URL        string

	Platform SocialMediaPlatform `gorm:"foreignKey:PlatformID"`
}

func (SocialMediaLink) TableName() string {
	return "brewery_social_media"
}
