package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yourscinema-backend/internal/service"
)

type CatalogController struct {
	CatalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// GetMovies handles GET /movies?mood=
func (cc *CatalogController) GetMovies(c *gin.Context) {
	movies, err := cc.CatalogService.GetMovies(c.Query("mood"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

// GetMovie handles GET /movies/:id
func (cc *CatalogController) GetMovie(c *gin.Context) {
	movie, ok := cc.CatalogService.GetMovie(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	c.JSON(http.StatusOK, movie)
}

// GetMoods handles GET /moods
func (cc *CatalogController) GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": cc.CatalogService.GetMoods()})
}
