package controllers

import (
	"backend/database"
	"backend/models"
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProductSearch là object JSON trong query param `search`.
type ProductSearch struct {
	Name             string `json:"name"`
	PlatformID       uint64 `json:"platform_id"`
	PriceChangeOrder string `json:"priceChangeOrder"`
	FromDate         string `json:"fromDate"`
	ToDate           string `json:"toDate"`
}

// GetProducts phân trang offset/limit; total đếm bằng đúng predicate của
// trang dữ liệu.
func GetProducts(c *fiber.Ctx) error {
	pageIndex := c.QueryInt("pageIndex", 0)
	if pageIndex < 0 {
		pageIndex = 0
	}
	pageSize := c.QueryInt("pageSize", 12)
	if pageSize <= 0 {
		pageSize = 12
	}

	var search ProductSearch
	if raw := c.Query("search"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &search); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Tham số tìm kiếm không hợp lệ",
			})
		}
	}

	filtered := func() *gorm.DB {
		query := database.DB.Model(&models.Product{})
		if search.Name != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search.Name+"%")
		}
		if search.PlatformID != 0 {
			query = query.Where("platform_id = ?", search.PlatformID)
		}
		if search.FromDate != "" {
			query = query.Where("DATE(crawled_at) >= DATE(?)", search.FromDate)
		}
		if search.ToDate != "" {
			query = query.Where("DATE(crawled_at) <= DATE(?)", search.ToDate)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	order := "price_change"
	if strings.EqualFold(search.PriceChangeOrder, "desc") {
		order = "price_change DESC"
	}

	var products []models.Product
	if err := filtered().Order(order).Offset(pageIndex * pageSize).Limit(pageSize).Find(&products).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	return c.JSON(fiber.Map{
		"products":  products,
		"total":     total,
		"pageIndex": pageIndex,
		"pageSize":  pageSize,
	})
}
