package controllers

import (
	"backend/database"
	"backend/models"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

// HistorySearch là object JSON trong query param `search`. `product_name`
// cũng được chấp nhận như query param thường để tương thích với trang chart.
type HistorySearch struct {
	ProductName string `json:"product_name"`
	PlatformID  uint64 `json:"platform_id"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
}

// GetHistories trả các mẫu giá đã quan sát theo tên sản phẩm, crawled_at tăng
// dần để vẽ chart.
func GetHistories(c *fiber.Ctx) error {
	var search HistorySearch
	if raw := c.Query("search"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &search); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Tham số tìm kiếm không hợp lệ",
			})
		}
	}
	if search.ProductName == "" {
		search.ProductName = c.Query("product_name")
	}
	if search.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "product_name là bắt buộc",
		})
	}

	query := database.DB.Preload("Platform").
		Where("title = ?", search.ProductName).
		Order("crawled_at ASC")
	if search.PlatformID != 0 {
		query = query.Where("platform_id = ?", search.PlatformID)
	}
	if search.FromDate != "" {
		query = query.Where("DATE(crawled_at) >= DATE(?)", search.FromDate)
	}
	if search.ToDate != "" {
		query = query.Where("DATE(crawled_at) <= DATE(?)", search.ToDate)
	}

	var histories []models.History
	if err := query.Find(&histories).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	data := make([]*models.HistoryResponse, 0, len(histories))
	for i := range histories {
		data = append(data, histories[i].Public())
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}
