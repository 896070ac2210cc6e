package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/harborlane/storefront-api/catalog"
)

// ExportProductsToExcel streams the full catalog as an .xlsx download.
// GET /shop/products/export
func ExportProductsToExcel(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Category", "BasePrice", "SalePrice", "EffectivePrice",
			"Description", "Sizes", "Colors", "Featured", "Rating", "ReviewsCount",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range cat.Products() {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.BasePrice.String())
			if p.SalePrice != nil {
				row.AddCell().SetValue(p.SalePrice.String())
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.EffectivePrice().String())
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(strings.Join(p.Colors, ","))
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.ReviewsCount)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
