package routes

import (
	"github.com/gin-gonic/gin"

	"cafe-registry-api/handlers"
	"cafe-registry-api/middleware"
)

// SetupRoutes binds every endpoint to its handler. apiKey guards the
// report-closed route only.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, apiKey string) {
	r.GET("/random", h.GetRandomCafe)
	r.GET("/all", h.GetAllCafes)
	r.GET("/search", h.SearchCafes)
	r.POST("/add", h.AddCafe)
	r.PATCH("/update-price/:id", h.UpdatePrice)

	r.DELETE("/report-closed/:id", middleware.APIKeyRequired(apiKey), h.DeleteCafe)
}
