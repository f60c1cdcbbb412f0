package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/malikdesigner/mobile-sale-store/catalog"
)

// GetProducts answers the storefront query: search text, filter state and
// sort key arrive as query params, the visible list is recomputed against
// the engine's live snapshot.
func GetProducts(engine *catalog.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := filtersFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		search := c.Query("search")
		sortKey := catalog.SortKey(c.DefaultQuery("sort_by", string(catalog.SortNewest)))

		products := engine.Query(search, filters, sortKey)
		c.JSON(http.StatusOK, gin.H{
			"products":            products,
			"count":               len(products),
			"active_filter_count": filters.ActiveCount(),
		})
	}
}

// filtersFromQuery maps query params onto a FilterState. Absent params
// leave their field at the unconstrained default.
func filtersFromQuery(c *gin.Context) (catalog.FilterState, error) {
	filters := catalog.DefaultFilters()

	filters.Brands = csv(c.Query("brands"))
	filters.Models = csv(c.Query("models"))
	filters.Conditions = csv(c.Query("conditions"))
	filters.Categories = csv(c.Query("categories"))
	filters.Colors = csv(c.Query("colors"))
	filters.Storages = csv(c.Query("storages"))
	filters.RAMs = csv(c.Query("rams"))
	filters.OperatingSystems = csv(c.Query("operating_systems"))
	filters.ScreenSizes = csv(c.Query("screen_sizes"))
	filters.BatteryCapacities = csv(c.Query("battery_capacities"))
	filters.CameraMegapixels = csv(c.Query("camera_megapixels"))

	if v := c.Query("min_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, fmt.Errorf("Invalid min_price")
		}
		filters.PriceRange.Min = mp
	}
	if v := c.Query("max_price"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, fmt.Errorf("Invalid max_price")
		}
		filters.PriceRange.Max = mp
	}
	if v := c.Query("rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, fmt.Errorf("Invalid rating")
		}
		filters.Rating = r
	}
	filters.Featured = c.Query("featured") == "true"
	filters.InStock = c.Query("in_stock") == "true"

	return filters, nil
}

func csv(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
