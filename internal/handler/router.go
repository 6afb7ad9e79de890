package handler

import (
	"net/http"

	_ "placefinder-api/docs"
	"placefinder-api/internal/metrics"
	"placefinder-api/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route of the API.
func NewRouter(places *PlacesHandler, maps *MapHandler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", places.Index)
	r.GET("/categories", places.Categories)
	r.POST("/find", places.FindPlaces)
	r.GET("/map", maps.ShowLatestMap)
	r.GET("/map/:id", maps.ShowMap)

	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
