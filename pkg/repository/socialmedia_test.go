package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/hoplocal/brewdex/pkg/repository"
)

type SocialMediaTestSuite struct {
	RepositorySuite
}

func TestSocialMediaTestSuite(t *testing.T) {
	suite.Run(t, new(SocialMediaTestSuite))
}

func (suite *SocialMediaTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SocialMediaTestSuite) TestEnsurePlatforms_SeedsKnownPlatforms() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "social_media_platforms" (.+) ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(uint(1)).AddRow(uint(2)).AddRow(uint(3)).AddRow(uint(4)))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.EnsurePlatforms(context.Background()))
}

func (suite *SocialMediaTestSuite) TestAddSocialMediaPlatform_AddsPlatform() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "social_media_platforms" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(5)))
	suite.mock.ExpectCommit()

	platform, err := suite.repository.AddSocialMediaPlatform(context.Background(), "Mastodon")
	suite.Require().NoError(err)
	suite.Equal(uint(5), platform.ID)
	suite.Equal("Mastodon", platform.Name)
}

func (suite *SocialMediaTestSuite) TestCreateSocialMediaLinks_SkipsUnrecognizedURLs() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "brewery_social_media" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)).AddRow(uint(2)))
	suite.mock.ExpectCommit()

	urls := []string{
		"https://facebook.com/hoppy-trails",
		"https://myspace.com/hoppy-trails",
		"https://untappd.com/w/hoppy-trails/99",
	}

	ids, err := suite.repository.CreateSocialMediaLinks(context.Background(), 10, urls)
	suite.Require().NoError(err)
	suite.Equal([]uint{1, 2}, ids)

	suite.Equal(1, suite.observedLogs.Len())
	suite.Equal("skipping unrecognized social media url", suite.observedLogs.All()[0].Message)
}

func (suite *SocialMediaTestSuite) TestCreateSocialMediaLinks_NoRecognizedURLsIsNoOp() {
	ids, err := suite.repository.CreateSocialMediaLinks(context.Background(), 10, []string{"https://myspace.com/x"})
	suite.Require().NoError(err)
	suite.NotNil(ids)
	suite.Empty(ids)
}

func (suite *SocialMediaTestSuite) TestBatchCreateSocialMediaLinks_FlattensAndCounts() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "brewery_social_media" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)).AddRow(uint(2)).AddRow(uint(3)))
	suite.mock.ExpectCommit()

	entries := []repository.SocialMediaEntry{
		{BreweryID: 1, URLs: []string{"https://twitter.com/one", "https://nowhere.example/one"}},
		{BreweryID: 2, URLs: []string{"https://instagram.com/two", "https://facebook.com/two"}},
	}

	created, skipped, err := suite.repository.BatchCreateSocialMediaLinks(context.Background(), entries)
	suite.Require().NoError(err)
	suite.Equal(int64(3), created)
	suite.Equal(1, skipped)
}

func (suite *SocialMediaTestSuite) TestBatchCreateSocialMediaLinks_EmptyInputSkipsDatabase() {
	created, skipped, err := suite.repository.BatchCreateSocialMediaLinks(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Zero(created)
	suite.Zero(skipped)
}

func (suite *SocialMediaTestSuite) TestAddSocialMediaToBreweries_FiltersEmptyURLLists() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "brewery_social_media" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	entries := []repository.SocialMediaEntry{
		{BreweryID: 1, URLs: nil},
		{BreweryID: 2, URLs: []string{"https://x.com/two"}},
	}

	created, skipped, err := suite.repository.AddSocialMediaToBreweries(context.Background(), entries)
	suite.Require().NoError(err)
	suite.Equal(int64(1), created)
	suite.Zero(skipped)
}

func (suite *SocialMediaTestSuite) TestAddSocialMediaToBreweries_AllEmptyIsNoOp() {
	entries := []repository.SocialMediaEntry{{BreweryID: 1}, {BreweryID: 2}}

	created, skipped, err := suite.repository.AddSocialMediaToBreweries(context.Background(), entries)
	suite.Require().NoError(err)
	suite.Zero(created)
	suite.Zero(skipped)
}

func (suite *SocialMediaTestSuite) TestGetBrewerySocialMedia_JoinsPlatforms() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "brewery_social_media" LEFT JOIN "social_media_platforms" "Platform" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "brewery_id", "platform_id", "url", "Platform__id", "Platform__name"}).
			AddRow(uint(1), uint(10), uint(2), "https://facebook.com/hoppy-trails", uint(2), "Facebook"))

	links, err := suite.repository.GetBrewerySocialMedia(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Len(links, 1)
	suite.Equal("https://facebook.com/hoppy-trails", links[0].URL)
	suite.Equal(uint(2), links[0].PlatformID)
	suite.Equal("Facebook", links[0].Platform.Name)
}

func (suite *SocialMediaTestSuite) TestGetBrewerySocialMedia_EmptyWhenNone() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "brewery_social_media" LEFT JOIN "social_media_platforms" "Platform" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "brewery_id", "platform_id", "url"}))

	links, err := suite.repository.GetBrewerySocialMedia(context.Background(), 10)
	suite.Require().NoError(err)
	suite.NotNil(links)
	suite.Empty(links)
}
