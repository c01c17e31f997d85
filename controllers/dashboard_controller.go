package controllers

import (
	"backend/database"
	"backend/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardData gom số liệu tổng quan cho trang dashboard: tổng sản phẩm,
// tổng sàn, crawler theo trạng thái và các sản phẩm biến động giá gần nhất.
func GetDashboardData(c *fiber.Ctx) error {
	var totalProducts, totalPlatforms int64
	if err := database.DB.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}
	if err := database.DB.Model(&models.Platform{}).Count(&totalPlatforms).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	if err := database.DB.Model(&models.Crawler{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	var movers []models.Product
	if err := database.DB.Order("ABS(price_change) DESC").Limit(8).Find(&movers).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	priceChanges := make([]fiber.Map, 0, len(movers))
	for _, p := range movers {
		priceChanges = append(priceChanges, fiber.Map{
			"name":         p.Name,
			"currentPrice": p.CurrentPrice,
			"priceChange":  p.PriceChange,
			"platform_id":  p.PlatformID,
			"crawled_at":   p.CrawledAt,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_products":  totalProducts,
			"total_platforms": totalPlatforms,
			"crawler_status":  statusCounts,
			"price_changes":   priceChanges,
		},
	})
}
