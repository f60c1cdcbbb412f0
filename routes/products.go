package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/malikdesigner/mobile-sale-store/controllers/product"

	"github.com/malikdesigner/mobile-sale-store/catalog"
	"github.com/malikdesigner/mobile-sale-store/store"
)

// SetupProductRoutes registers the public “/products/*” endpoints.
// Browsing needs no token; listings are filtered and sorted in-process
// by the catalog engine.
func SetupProductRoutes(r *gin.Engine, engine *catalog.Engine, products *store.ProductStore, feed *store.ProductFeed) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("", productcontroller.GetProducts(engine))
		productGroup.GET("/facets", productcontroller.GetFacets(engine))
		productGroup.GET("/live", productcontroller.LiveProducts(engine, feed))
		productGroup.GET("/:id", productcontroller.GetProductByID(products))
	}
}
