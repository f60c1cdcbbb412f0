package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/malikdesigner/mobile-sale-store/store"
)

// ExportProductsToExcel dumps the catalog as a spreadsheet download.
func ExportProductsToExcel(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Brand", "Name", "Model", "Description",
			"Price", "OriginalPrice", "Condition", "Category",
			"Color", "Storage", "RAM", "OperatingSystem", "ScreenSize",
			"BatteryCapacity", "CameraMegapixel", "Rating", "Featured",
			"InStock", "SellerID", "SellerEmail", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range all {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Model)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.OriginalPrice)
			row.AddCell().SetValue(p.Condition)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Color)
			row.AddCell().SetValue(p.Storage)
			row.AddCell().SetValue(p.RAM)
			row.AddCell().SetValue(p.OperatingSystem)
			row.AddCell().SetValue(p.ScreenSize)
			row.AddCell().SetValue(p.BatteryCapacity)
			row.AddCell().SetValue(p.CameraMegapixel)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.SellerID)
			row.AddCell().SetValue(p.SellerEmail)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
