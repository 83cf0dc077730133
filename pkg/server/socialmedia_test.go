package server_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/repository"
)

type SocialMediaHandlerSuite struct {
	ServerSuite
}

func TestSocialMediaHandlerSuite(t *testing.T) {
	suite.Run(t, new(SocialMediaHandlerSuite))
}

func (suite *SocialMediaHandlerSuite) TestAddFeatures_Returns201() {
	features := []*model.Feature{
		{Model: gorm.Model{ID: 1}, Name: "dog-friendly"},
		{Model: gorm.Model{ID: 2}, Name: "live-music"},
	}
	suite.featureRepo.On("AddFeatures", mock.Anything, []string{"dog-friendly", "live-music"}).
		Return(features, nil)

	recorder := suite.perform(http.MethodPost, "/api/brewery_features", `["dog-friendly", "live-music"]`)

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`[
		{"id": 1, "name": "dog-friendly"},
		{"id": 2, "name": "live-music"}
	]`, recorder.Body.String())
}

func (suite *SocialMediaHandlerSuite) TestAddFeatures_MalformedBodyIs400() {
	recorder := suite.perform(http.MethodPost, "/api/brewery_features", `{"not": "an array"}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *SocialMediaHandlerSuite) TestAddSocialMediaPlatform_Returns201() {
	platform := &model.SocialMediaPlatform{Model: gorm.Model{ID: 5}, Name: "Mastodon"}
	suite.socialMediaRepo.On("AddSocialMediaPlatform", mock.Anything, "Mastodon").Return(platform, nil)

	recorder := suite.perform(http.MethodPost, "/api/social_media_platforms", `{"platform_name": "Mastodon"}`)

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{"id": 5, "platform_name": "Mastodon"}`, recorder.Body.String())
}

func (suite *SocialMediaHandlerSuite) TestAddSocialMediaPlatform_DuplicateIs409() {
	suite.socialMediaRepo.On("AddSocialMediaPlatform", mock.Anything, "Facebook").
		Return(nil, gorm.ErrDuplicatedKey)

	recorder := suite.perform(http.MethodPost, "/api/social_media_platforms", `{"platform_name": "Facebook"}`)

	suite.Equal(http.StatusConflict, recorder.Code)
	suite.JSONEq(`{"error": "duplicated key not allowed"}`, recorder.Body.String())
}

func (suite *SocialMediaHandlerSuite) TestAddSocialMediaPlatform_MissingNameIs400() {
	recorder := suite.perform(http.MethodPost, "/api/social_media_platforms", `{}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *SocialMediaHandlerSuite) TestAddSocialMedia_ReportsCreatedAndSkipped() {
	suite.socialMediaRepo.On("AddSocialMediaToBreweries", mock.Anything, []repository.SocialMediaEntry{
		{BreweryID: 1, URLs: []string{"https://twitter.com/alpha", "https://nowhere.example/alpha"}},
		{BreweryID: 2, URLs: []string{"https://untappd.com/w/bravo/2"}},
	}).Return(int64(2), 1, nil)

	recorder := suite.perform(http.MethodPost, "/api/brewery_social_media/add-social-media", `[
		{"id": 1, "social_media": ["https://twitter.com/alpha", "https://nowhere.example/alpha"]},
		{"id": 2, "social_media": ["https://untappd.com/w/bravo/2"]}
	]`)

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{"message": "Added 2 social media links", "skipped": 1}`, recorder.Body.String())
}

func (suite *SocialMediaHandlerSuite) TestAddSocialMedia_RepositoryErrorIs500() {
	suite.socialMediaRepo.On("AddSocialMediaToBreweries", mock.Anything, mock.Anything).
		Return(int64(0), 0, gorm.ErrInvalidDB)

	recorder := suite.perform(http.MethodPost, "/api/brewery_social_media/add-social-media",
		`[{"id": 1, "social_media": ["https://twitter.com/alpha"]}]`)

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"error": "invalid db"}`, recorder.Body.String())
}
