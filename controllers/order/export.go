package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Sufiyan0000/nike-ecommerce/controllers/respond"
)

// GET /admin/orders/export
func (h *Handler) Export(c *gin.Context) {
	orders, err := h.svc.ListAllOrders(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headers := []string{
		"ID", "UserID", "Status", "TotalAmount", "Items",
		"ShippingAddressID", "BillingAddressID", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		itemCount := 0
		for _, item := range o.Items {
			itemCount += item.Quantity
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(int(o.ID))
		row.AddCell().SetValue(o.UserID)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
		row.AddCell().SetValue(strconv.Itoa(itemCount))
		row.AddCell().SetValue(int(o.ShippingAddressID))
		row.AddCell().SetValue(int(o.BillingAddressID))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
