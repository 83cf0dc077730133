package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/repository"
)

type breweryRepository interface {
	GetAllBreweries(ctx context.Context) ([]*model.Brewery, error)
	GetBreweryByID(ctx context.Context, breweryID uint) (*model.Brewery, error)
	CreateBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error)
	UpdateBrewery(ctx context.Context, breweryID uint, updates map[string]any) (*model.Brewery, error)
	DeleteBrewery(ctx context.Context, breweryID uint) error
	BulkCreateBreweries(ctx context.Context, inputs []repository.BreweryInput) ([]*model.Brewery, error)
}

type featureRepository interface {
	AddFeatures(ctx context.Context, names []string) ([]*model.Feature, error)
}

type socialMediaRepository interface {
	AddSocialMediaPlatform(ctx context.Context, name string) (*model.SocialMediaPlatform, error)
	AddSocialMediaToBreweries(ctx context.Context, entries []repository.SocialMediaEntry) (int64, int, error)
}

type Server struct {
	logger          *zap.Logger
	breweryRepo     breweryRepository
	featureRepo     featureRepository
	socialMediaRepo socialMediaRepository
}

func NewServer(breweryRepo breweryRepository, featureRepo featureRepository, socialMediaRepo socialMediaRepository, logger *zap.Logger) *Server {
	return &Server{
		logger:          logger,
		breweryRepo:     breweryRepo,
		featureRepo:     featureRepo,
		socialMediaRepo: socialMediaRepo,
	}
}

// Routes registers the REST surface under /api.
func (s *Server) Routes(router gin.IRouter) {
	api := router.Group("/api")

	api.GET("/breweries", s.listBreweries)
	api.GET("/breweries/:id", s.getBrewery)
	api.POST("/breweries", s.createBrewery)
	api.POST("/breweries/bulk", s.bulkCreateBreweries)
	api.PUT("/breweries/:id", s.updateBrewery)
	api.DELETE("/breweries/:id", s.deleteBrewery)

	api.POST("/brewery_features", s.addFeatures)
	api.POST("/social_media_platforms", s.addSocialMediaPlatform)
	api.POST("/brewery_social_media/add-social-media", s.addSocialMedia)
}

// RequestLogger tags each request with an ID and logs its outcome.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// respondError maps an error to a status code at the boundary: missing rows to
// 404, rejected input to 400, unique-constraint conflicts to 409, everything
// else to a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrBreweryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrInvalidField):
		status = http.StatusBadRequest
	case errors.Is(err, gorm.ErrDuplicatedKey):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
