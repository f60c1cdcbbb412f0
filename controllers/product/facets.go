package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malikdesigner/mobile-sale-store/catalog"
)

// GetFacets returns the distinct values for every filterable dimension,
// derived fresh from the current snapshot so the filter UI never offers
// a stale choice.
func GetFacets(engine *catalog.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Facets())
	}
}
