package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub/models"
)

// AdvisorService is the surface the handlers need from the services layer.
type AdvisorService interface {
	Validate(ctx context.Context, req models.AdvisorRequest) models.ValidateResponse
	Roadmap(ctx context.Context, req models.AdvisorRequest) (models.RoadmapResponse, error)
	Suggest(ctx context.Context, req models.StackRequest) models.SuggestResponse
	Viva(ctx context.Context, req models.AdvisorRequest) (models.VivaResponse, error)
}

const defaultDuration = "3 Months"

// SetupAdvisorRoutes registers the four advisor endpoints.
func SetupAdvisorRoutes(router *gin.Engine, svc AdvisorService) {
	router.POST("/validate", validateHandler(svc))
	router.POST("/roadmap", roadmapHandler(svc))
	router.POST("/suggest", suggestHandler(svc))
	router.POST("/viva", vivaHandler(svc))
}

func bindAdvisorRequest(c *gin.Context) (models.AdvisorRequest, bool) {
	var req models.AdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return models.AdvisorRequest{}, false
	}
	if req.Duration == "" {
		req.Duration = defaultDuration
	}
	return req, true
}

func validateHandler(svc AdvisorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindAdvisorRequest(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.Validate(c.Request.Context(), req))
	}
}

func roadmapHandler(svc AdvisorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindAdvisorRequest(c)
		if !ok {
			return
		}
		resp, err := svc.Roadmap(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func suggestHandler(svc AdvisorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.StackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		c.JSON(http.StatusOK, svc.Suggest(c.Request.Context(), req))
	}
}

func vivaHandler(svc AdvisorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindAdvisorRequest(c)
		if !ok {
			return
		}
		resp, err := svc.Viva(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Viva Prep Failed"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
