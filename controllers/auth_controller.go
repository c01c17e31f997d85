package controllers

import (
	"backend/database"
	"backend/middleware"
	"errors"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"backend/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func getJWTSecret() string {
	if os.Getenv("JWT_SECRET") != "" {
		return os.Getenv("JWT_SECRET")
	}
	return "default-secret"
}

// Login xác thực username/password, phát hành JWT 24h trong cookie HTTP-only.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Định dạng yêu cầu không hợp lệ",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Tên đăng nhập và mật khẩu là bắt buộc",
		})
	}

	var account models.Account
	result := database.DB.Where("username = ?", req.Username).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Tên đăng nhập hoặc mật khẩu không đúng",
			})
		}
		log.Printf("❌ Database error on login: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi đăng nhập",
		})
	}

	if !account.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Tên đăng nhập hoặc mật khẩu không đúng",
		})
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"account_id": account.AccountID,
		"username":   account.Username,
		"role":       account.Role,
		"exp":        expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(getJWTSecret()))
	if err != nil {
		log.Printf("❌ Error generating JWT token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Lỗi đăng nhập",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    tokenString,
		Expires:  expirationTime,
		Path:     "/",
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    account.Public(),
	})
}

// Logout chỉ xoá cookie phía client; token đã phát hành vẫn hợp lệ đến khi
// tự hết hạn (không có danh sách thu hồi phía server).
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đã đăng xuất",
	})
}
