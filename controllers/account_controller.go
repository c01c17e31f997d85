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

type AccountCreateRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

type AccountUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
}

// GetAccounts trả danh sách tài khoản, mới nhất trước.
func GetAccounts(c *fiber.Ctx) error {
	var accounts []models.Account
	if err := database.DB.Order("created_at DESC").Find(&accounts).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi truy vấn cơ sở dữ liệu",
		})
	}

	data := make([]*models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		data = append(data, accounts[i].Public())
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func GetAccountByID(c *fiber.Ctx) error {
	var account models.Account
	if err := database.DB.First(&account, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy tài khoản",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": account.Public()})
}

func CreateAccount(c *fiber.Ctx) error {
	var req AccountCreateRequest
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

	account := models.Account{Username: req.Username, Role: req.Role}
	if err := account.HashPassword(req.Password); err != nil {
		log.Printf("❌ Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi tạo tài khoản",
		})
	}

	if err := database.DB.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Tên đăng nhập đã tồn tại",
			})
		}
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi tạo tài khoản",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    account.Public(),
	})
}

// UpdateAccount chỉ chạm vào các field được gửi lên.
func UpdateAccount(c *fiber.Ctx) error {
	var account models.Account
	if err := database.DB.First(&account, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy tài khoản",
		})
	}

	var req AccountUpdateRequest
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

	if req.Username != nil {
		account.Username = *req.Username
	}
	if req.Password != nil {
		if err := account.HashPassword(*req.Password); err != nil {
			log.Printf("❌ Error hashing password: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Lỗi khi cập nhật tài khoản",
			})
		}
	}
	if req.Role != nil {
		account.Role = *req.Role
	}

	if err := database.DB.Save(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Tên đăng nhập đã tồn tại",
			})
		}
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi cập nhật tài khoản",
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": account.Public()})
}

func DeleteAccount(c *fiber.Ctx) error {
	var account models.Account
	if err := database.DB.First(&account, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Không tìm thấy tài khoản",
		})
	}

	if err := database.DB.Delete(&account).Error; err != nil {
		log.Printf("❌ Database error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi khi xóa tài khoản",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đã xóa tài khoản thành công",
	})
}
