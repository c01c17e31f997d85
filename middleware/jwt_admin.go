package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const RoleAdmin = "admin"

// Tiền tố chỉ dành cho admin.
var adminPaths = []string{"/dashboard/admin"}

func IsAdminPath(path string) bool {
	for _, p := range adminPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AdminOnly là gate mức route cho các API chỉ admin được gọi. Khác với gate
// theo đường dẫn ở AuthRequired, gate này trả 403 JSON thay vì redirect.
func AdminOnly(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Chỉ admin mới được phép thực hiện thao tác này",
		})
	}
	return c.Next()
}
