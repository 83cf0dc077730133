package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoplocal/brewdex/pkg/repository"
)

type platformRequest struct {
	PlatformName string `json:"platform_name" binding:"required"`
}

type platformResponse struct {
	ID           uint   `json:"id"`
	PlatformName string `json:"platform_name"`
}

type socialMediaRequest struct {
	ID          uint     `json:"id" binding:"required"`
	SocialMedia []string `json:"social_media"`
}

func (s *Server) addSocialMediaPlatform(c *gin.Context) {
	var request platformRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	platform, err := s.socialMediaRepo.AddSocialMediaPlatform(c.Request.Context(), request.PlatformName)
	if err != nil {
		s.respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, platformResponse{ID: platform.ID, PlatformName: platform.Name})
}

// addSocialMedia attaches social media URLs to existing breweries. URLs that
// match no known platform are counted and reported, not stored.
func (s *Server) addSocialMedia(c *gin.Context) {
	var request []socialMediaRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	entries := make([]repository.SocialMediaEntry, 0, len(request))
	for _, record := range request {
		entries = append(entries, repository.SocialMediaEntry{BreweryID: record.ID, URLs: record.SocialMedia})
	}

	created, skipped, err := s.socialMediaRepo.AddSocialMediaToBreweries(c.Request.Context(), entries)
	if err != nil {
		s.respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Added %d social media links", created),
		"skipped": skipped,
	})
}
