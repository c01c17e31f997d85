package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthCookieName là cookie phiên do /api/auth/login set.
const AuthCookieName = "auth-token"

// Các đường dẫn không cần xác thực.
var publicPaths = []string{"/auth", "/api/auth/login"}

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("default-secret")
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range publicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthRequired chặn mọi request không có token hợp lệ trong cookie. API trả
// 401 JSON, trang web redirect về /auth. Identity đã verify được inject vào
// Locals cho handler phía sau.
func AuthRequired(c *fiber.Ctx) error {
	path := c.Path()
	if isPublicPath(path) {
		return c.Next()
	}

	tokenStr := c.Cookies(AuthCookieName)
	if tokenStr == "" {
		return denyRequest(c)
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return denyRequest(c)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return denyRequest(c)
	}

	role, _ := claims["role"].(string)
	if id, ok := claims["account_id"].(float64); ok {
		c.Locals("account_id", uint64(id))
	}
	if username, ok := claims["username"].(string); ok {
		c.Locals("username", username)
	}
	c.Locals("role", role)

	// Trang admin cần role admin; phiên hợp lệ nhưng thiếu quyền thì quay về
	// dashboard chung chứ không về trang đăng nhập.
	if IsAdminPath(path) && role != RoleAdmin {
		return c.Redirect("/dashboard")
	}

	return c.Next()
}

func denyRequest(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Phiên đăng nhập không hợp lệ hoặc đã hết hạn",
		})
	}
	return c.Redirect("/auth")
}
