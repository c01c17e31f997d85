package controllers

import (
	"backend/database"
	"backend/models"
	"backend/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlatformCreateRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	URL  string `json:"url" validate:"required,url"`
	Logo string `json:"logo" validate:"required"`
}

type PlatformUpdateRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
	URL  *string `json:"url" validate:"omitempty,url"`
	Logo *string `json:"logo"`
}

// GetPlatforms - Lấy danh sách sàn, mới nhất trước.
func GetPlatforms(c *fiber.Ctx) error {
	var platforms []models.Platform
	if err := database.DB.Order("created_at DESC").Find(&platforms).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": platforms})
}

func GetPlatformByID(c *fiber.Ctx) error {
	var platform models.Platform
	if err := database.DB.First(&platform, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy sàn",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": platform})
}

// CreatePlatform - Tạo sàn mới.
func CreatePlatform(c *fiber.Ctx) error {
	var req PlatformCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Định dạng yêu cầu không hợp lệ",
		})
	}

	if fieldErrors := utils.ValidateStruct(&req); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   fieldErrors,
		})
	}

	platform := models.Platform{Name: req.Name, URL: req.URL, Logo: req.Logo}
	if err := database.DB.Create(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Sàn đã tồn tại",
			})
		}
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi thêm sàn mới",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    platform,
	})
}

func UpdatePlatform(c *fiber.Ctx) error {
	var platform models.Platform
	if err := database.DB.First(&platform, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy sàn",
		})
	}

	var req PlatformUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Định dạng yêu cầu không hợp lệ",
		})
	}

	if fieldErrors := utils.ValidateStruct(&req); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   fieldErrors,
		})
	}

	if req.Name != nil {
		platform.Name = *req.Name
	}
	if req.URL != nil {
		platform.URL = *req.URL
	}
	if req.Logo != nil {
		platform.Logo = *req.Logo
	}

	if err := database.DB.Save(&platform).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi cập nhật sàn",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": platform})
}

func DeletePlatform(c *fiber.Ctx) error {
	var platform models.Platform
	if err := database.DB.First(&platform, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy sàn",
		})
	}

	if err := database.DB.Delete(&platform).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi xóa sàn",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đã xóa sàn thành công",
	})
}
