package productcontroller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/malikdesigner/mobile-sale-store/store"
)

// ImportProductsFromExcel bulk-creates listings from an uploaded
// spreadsheet. Column order matches the export (minus the generated
// columns): Brand, Name, Model, Description, Price, OriginalPrice,
// Condition, Category, Color, Storage, RAM, OperatingSystem, ScreenSize,
// BatteryCapacity, CameraMegapixel. Invalid rows are skipped, not fatal.
func ImportProductsFromExcel(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}

		wb, err := xlsx.OpenBinary(data)
		if err != nil || len(wb.Sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Excel file"})
			return
		}

		sellerID := c.GetString("user_id")
		sellerEmail := c.GetString("email")

		createdCount := 0
		skippedCount := 0
		for i, row := range wb.Sheets[0].Rows {
			if i == 0 {
				continue // header
			}
			cell := func(idx int) string {
				if idx >= len(row.Cells) {
					return ""
				}
				return row.Cells[idx].String()
			}

			input := ProductInput{
				Brand:           cell(0),
				Name:            cell(1),
				Model:           cell(2),
				Description:     cell(3),
				Price:           cell(4),
				OriginalPrice:   cell(5),
				Condition:       cell(6),
				Category:        cell(7),
				Color:           cell(8),
				Storage:         cell(9),
				RAM:             cell(10),
				OperatingSystem: cell(11),
				ScreenSize:      cell(12),
				BatteryCapacity: cell(13),
				CameraMegapixel: cell(14),
			}

			product, err := productFromInput(input)
			if err != nil {
				skippedCount++
				continue
			}
			product.SellerID = sellerID
			product.SellerEmail = sellerEmail

			if err := products.Create(c.Request.Context(), product); err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"skipped_count": skippedCount,
		})
	}
}
