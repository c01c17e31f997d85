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

type CrawlerCreateRequest struct {
	Name       string `json:"name" validate:"required"`
	PlatformID uint64 `json:"platform_id" validate:"required"`
	Metadata   string `json:"metadata" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=active error paused"`
}

type CrawlerUpdateRequest struct {
	Name       *string `json:"name"`
	PlatformID *uint64 `json:"platform_id"`
	Metadata   *string `json:"metadata"`
	Status     *string `json:"status" validate:"omitempty,oneof=active error paused"`
}

type CrawlerStatusRequest struct {
	Status string `json:"status"`
}

// startCrawlerAsync bắn yêu cầu chạy crawler sau khi row đã commit. Không đợi,
// không retry; lỗi chỉ ghi log, không trả về caller.
func startCrawlerAsync(crawlerID uint64, metadata models.CrawlerMetadata) {
	go func() {
		if err := utils.StartCrawler(crawlerID, metadata.RunnerValue()); err != nil {
			log.Printf("❌ Failed to start crawler %d: %v", crawlerID, err)
		}
	}()
}

func runnerErrorResponse(c *fiber.Ctx, err error) error {
	var re *utils.RunnerError
	if errors.As(err, &re) {
		return c.Status(re.HTTPCode).JSON(fiber.Map{
			"success": false,
			"error":   re.Detail,
		})
	}
	log.Printf("❌ Runner unreachable: %v", err)
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"success": false,
		"error":   "Không thể kết nối đến crawler runner",
	})
}

// GetCrawlers lọc theo tên (không phân biệt hoa thường), chạy gần nhất trước.
func GetCrawlers(c *fiber.Ctx) error {
	query := database.DB.Preload("Platform").Order("last_run DESC")
	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	var crawlers []models.Crawler
	if err := query.Find(&crawlers).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	data := make([]*models.CrawlerResponse, 0, len(crawlers))
	for i := range crawlers {
		data = append(data, crawlers[i].Public())
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func GetCrawlerByID(c *fiber.Ctx) error {
	var crawler models.Crawler
	if err := database.DB.Preload("Platform").First(&crawler, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy crawler",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": crawler.Public()})
}

func CreateCrawler(c *fiber.Ctx) error {
	var req CrawlerCreateRequest
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

	var platform models.Platform
	if err := database.DB.First(&platform, req.PlatformID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy sàn",
		})
	}

	// Metadata chỉ được parse một lần, tại đây.
	metadata := models.ParseMetadata(req.Metadata)

	crawler := models.Crawler{
		Name:       req.Name,
		PlatformID: req.PlatformID,
		Metadata:   req.Metadata,
		Status:     req.Status,
	}
	if err := database.DB.Create(&crawler).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Crawler đã tồn tại",
			})
		}
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi tạo crawler",
		})
	}
	crawler.Platform = platform

	if crawler.Status == models.CrawlerStatusActive {
		startCrawlerAsync(crawler.CrawlerID, metadata)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    crawler.Public(),
	})
}

// UpdateCrawler cập nhật các field được gửi lên rồi kích hoạt runner theo
// trạng thái mới: active -> start không đợi, paused -> stop có đợi. Row đã
// commit trước khi gọi runner, nên stop lỗi vẫn để lại trạng thái paused.
func UpdateCrawler(c *fiber.Ctx) error {
	var crawler models.Crawler
	if err := database.DB.Preload("Platform").First(&crawler, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy crawler",
		})
	}

	var req CrawlerUpdateRequest
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
		crawler.Name = *req.Name
	}
	if req.PlatformID != nil {
		var platform models.Platform
		if err := database.DB.First(&platform, *req.PlatformID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Không tìm thấy sàn",
			})
		}
		crawler.PlatformID = *req.PlatformID
		crawler.Platform = platform
	}
	if req.Metadata != nil {
		crawler.Metadata = *req.Metadata
	}
	if req.Status != nil {
		crawler.Status = *req.Status
	}

	if err := database.DB.Save(&crawler).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Crawler đã tồn tại",
			})
		}
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi cập nhật crawler",
		})
	}

	if req.Status != nil {
		switch *req.Status {
		case models.CrawlerStatusActive:
			startCrawlerAsync(crawler.CrawlerID, models.ParseMetadata(crawler.Metadata))
		case models.CrawlerStatusPaused:
			if err := utils.StopCrawler(crawler.CrawlerID); err != nil {
				return runnerErrorResponse(c, err)
			}
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": crawler.Public()})
}

// DeleteCrawler xoá row trước rồi mới báo runner dừng job. Nếu stop thất bại
// thì row đã mất nhưng response vẫn là lỗi - cửa sổ không nhất quán này được
// chấp nhận, không phải two-phase commit.
func DeleteCrawler(c *fiber.Ctx) error {
	var crawler models.Crawler
	if err := database.DB.First(&crawler, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy crawler",
		})
	}

	if err := database.DB.Delete(&crawler).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi xóa crawler",
		})
	}

	if err := utils.StopCrawler(crawler.CrawlerID); err != nil {
		return runnerErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đã xóa crawler thành công",
	})
}

// PatchCrawlerStatus là endpoint cho runner báo lại trạng thái (error/success)
// mà không cần validate gì khác. Không kích hoạt start/stop.
func PatchCrawlerStatus(c *fiber.Ctx) error {
	var req CrawlerStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Định dạng yêu cầu không hợp lệ",
		})
	}

	if !models.IsCrawlerStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Trạng thái không hợp lệ",
		})
	}

	var crawler models.Crawler
	if err := database.DB.Preload("Platform").First(&crawler, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy crawler",
		})
	}

	crawler.Status = req.Status
	if err := database.DB.Model(&crawler).Update("status", req.Status).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi cập nhật crawler",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": crawler.Public()})
}
