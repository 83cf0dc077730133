package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hoplocal/brewdex/pkg/model"
	"github.com/hoplocal/brewdex/pkg/repository"
)

type breweryRequest struct {
	Name       string `json:"name"        binding:"required"`
	Address    string `json:"address"     binding:"required"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	WebsiteURL string `json:"website_url"`
	Country    string `json:"country"`
	MenuURL    string `json:"menu_url"`
}

type bulkBreweryRequest struct {
	breweryRequest
	BreweryType []string `json:"brewery_type"`
	SocialMedia []string `json:"social_media"`
}

// UpdateBreweryRequest is a partial update: only non-nil fields are applied.
type UpdateBreweryRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	WebsiteURL *string `json:"website_url"`
	Country    *string `json:"country"`
	MenuURL    *string `json:"menu_url"`
}

type breweryResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	Province    string            `json:"province"`
	PostalCode  string            `json:"postal_code"`
	Phone       string            `json:"phone"`
	WebsiteURL  string            `json:"website_url"`
	Country     string            `json:"country"`
	MenuURL     string            `json:"menu_url"`
	Features    []string          `json:"features"`
	SocialMedia map[string]string `json:"social_media"`
}

type bulkCreateResponse struct {
	Breweries          []breweryResponse `json:"breweries"`
	SocialMediaCreated int64             `json:"social_media_created"`
	SocialMediaSkipped int               `json:"social_media_skipped"`
}

func (r breweryRequest) toModel() model.Brewery {
	return model.Brewery{
		Name:       r.Name,
		Address:    r.Address,
		City:       r.City,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		WebsiteURL: r.WebsiteURL,
		Country:    r.Country,
		MenuURL:    r.MenuURL,
	}
}

func breweryFromModel(brewery *model.Brewery) breweryResponse {
	response := breweryResponse{
		ID:          brewery.ID,
		Name:        brewery.Name,
		Address:     brewery.Address,
		City:        brewery.City,
		Province:    brewery.Province,
		PostalCode:  brewery.PostalCode,
		Phone:       brewery.Phone,
		WebsiteURL:  brewery.WebsiteURL,
		Country:     brewery.Country,
		MenuURL:     brewery.MenuURL,
		Features:    make([]string, 0, len(brewery.Features)),
		SocialMedia: make(map[string]string, len(brewery.SocialMedia)),
	}

	for _, feature := range brewery.Features {
		response.Features = append(response.Features, feature.Name)
	}

	for _, link := range brewery.SocialMedia {
		response.SocialMedia[link.Platform.Name] = link.URL
	}

	return response
}

func breweryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brewery id"})

		return 0, false
	}

	return uint(id), true
}

func (s *Server) listBreweries(c *gin.Context) {
	breweries, err := s.breweryRepo.GetAllBreweries(c.Request.Context())
	if err != nil {
		s.respondError(c, err)

		return
	}

	response := make([]breweryResponse, 0, len(breweries))
	for _, brewery := range breweries {
		response = append(response, breweryFromModel(brewery))
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) getBrewery(c *gin.Context) {
	id, ok := breweryID(c)
	if !ok {
		return
	}

	brewery, err := s.breweryRepo.GetBreweryByID(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, breweryFromModel(brewery))
}

func (s *Server) createBrewery(c *gin.Context) {
	var request breweryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	brewery, err := s.breweryRepo.CreateBrewery(c.Request.Context(), request.toModel())
	if err != nil {
		s.respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, breweryFromModel(brewery))
}

func (s *Server) updateBrewery(c *gin.Context) {
	id, ok := breweryID(c)
	if !ok {
		return
	}

	var request UpdateBreweryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	updates := map[string]any{}

	for column, value := range map[string]*string{
		"name":        request.Name,
		"address":     request.Address,
		"city":        request.City,
		"province":    request.Province,
		"postal_code": request.PostalCode,
		"phone":       request.Phone,
		"website_url": request.WebsiteURL,
		"country":     request.Country,
		"menu_url":    request.MenuURL,
	} {
		if value != nil {
			updates[column] = *value
		}
	}

	brewery, err := s.breweryRepo.UpdateBrewery(c.Request.Context(), id, updates)
	if err != nil {
		s.respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, breweryFromModel(brewery))
}

func (s *Server) deleteBrewery(c *gin.Context) {
	id, ok := breweryID(c)
	if !ok {
		return
	}

	if err := s.breweryRepo.DeleteBrewery(c.Request.Context(), id); err != nil {
		s.respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// bulkCreateBreweries imports a batch of breweries with their feature tags in
// one transaction, then attaches any supplied social media URLs to the newly
// created rows.
func (s *Server) bulkCreateBreweries(c *gin.Context) {
	var request []bulkBreweryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	inputs := make([]repository.BreweryInput, 0, len(request))
	for _, record := range request {
		inputs = append(inputs, repository.BreweryInput{
			Brewery:  record.toModel(),
			Features: record.BreweryType,
		})
	}

	created, err := s.breweryRepo.BulkCreateBreweries(c.Request.Context(), inputs)
	if err != nil {
		s.respondError(c, err)

		return
	}

	entries := make([]repository.SocialMediaEntry, 0, len(created))
	for index, brewery := range created {
		entries = append(entries, repository.SocialMediaEntry{
			BreweryID: brewery.ID,
			URLs:      request[index].SocialMedia,
		})
	}

	linksCreated, linksSkipped, err := s.socialMediaRepo.AddSocialMediaToBreweries(c.Request.Context(), entries)
	if err != nil {
		s.respondError(c, err)

		return
	}

	response := bulkCreateResponse{
		Breweries:          make([]breweryResponse, 0, len(created)),
		SocialMediaCreated: linksCreated,
		SocialMediaSkipped: linksSkipped,
	}
	for _, brewery := range created {
		response.Breweries = append(response.Breweries, breweryFromModel(brewery))
	}

	c.JSON(http.StatusCreated, response)
}
