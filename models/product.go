package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Product được crawler bên ngoài ghi; dashboard chỉ đọc. JSON keys giữ nguyên
// camelCase như crawler ghi vào bảng.
type Product struct {
	ProductID     uint64    `gorm:"primaryKey;autoIncrement;column:product_id" json:"product_id"`
	Name          string    `gorm:"type:varchar(500);not null" json:"name"`
	PlatformID    uint64    `json:"platform_id"`
	Platform      Platform  `gorm:"foreignKey:PlatformID;references:PlatformID" json:"-"`
	Image         string    `json:"image"`
	Link          string    `json:"link"`
	CurrentPrice  float64   `gorm:"column:current_price" json:"currentPrice"`
	LowestPrice   float64   `gorm:"column:lowest_price" json:"lowestPrice"`
	HighestPrice  float64   `gorm:"column:highest_price" json:"highestPrice"`
	PriceChange   float64   `gorm:"column:price_change" json:"priceChange"`
	Rating        float64   `json:"rating"`
	Reviews       int64     `json:"reviews"`
	PurchaseCount int64     `json:"purchase_count"`
	CrawledAt     time.Time `json:"crawled_at"`
}

func MigrateProduct(db *gorm.DB) {
	if db.Migrator().HasTable(&Product{}) {
		return
	}
	if err := db.AutoMigrate(&Product{}); err != nil {
		log.Fatalf("❌ Failed to migrate Product table: %v", err)
	}
	log.Println("✅ Product table migrated successfully.")
}
