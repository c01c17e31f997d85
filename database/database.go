package database

import (
	"backend/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB là instance global cho toàn bộ controllers.
var DB *gorm.DB

func ConnectDatabase() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	var err error
	// TranslateError để vi phạm unique key nổi lên thành gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("✅ Database connected successfully!")

	Migrate(DB)
	fmt.Println("✅ Database migrated successfully!")
}

// Migrate tạo các bảng còn thiếu. Bảng products và histories cũng được tạo ở
// đây để môi trường dev chạy được một mình, dù dữ liệu do runner ghi.
func Migrate(db *gorm.DB) {
	models.MigrateAccount(db)
	models.MigratePlatform(db)
	models.MigrateCrawler(db)
	models.MigrateProduct(db)
	models.MigrateHistory(db)
}
