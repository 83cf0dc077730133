package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type featureResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// addFeatures registers feature names. Existing names are returned with their
// current IDs, so posting the same list twice is harmless.
func (s *Server) addFeatures(c *gin.Context) {
	var names []string
	if err := c.ShouldBindJSON(&names); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	features, err := s.featureRepo.AddFeatures(c.Request.Context(), names)
	if err != nil {
		s.respondError(c, err)

		return
	}

	response := make([]featureResponse, 0, len(features))
	for _, feature := range features {
		response = append(response, featureResponse{ID: feature.ID, Name: feature.Name})
	}

	c.JSON(http.StatusCreated, response)
}
