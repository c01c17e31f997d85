package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// History là chuỗi giá đã quan sát, append-only, do crawler bên ngoài ghi.
type History struct {
	HistoryID  uint64    `gorm:"primaryKey;autoIncrement;column:history_id" json:"history_id"`
	PlatformID uint64    `gorm:"index" json:"platform_id"`
	Platform   Platform  `gorm:"foreignKey:PlatformID;references:PlatformID" json:"-"`
	Title      string    `gorm:"type:varchar(500);index" json:"title"`
	Price      float64   `json:"price"`
	CrawledAt  time.Time `json:"crawled_at"`
}

type HistoryResponse struct {
	HistoryID  uint64    `json:"history_id"`
	PlatformID uint64    `json:"platform_id"`
	Platform   string    `json:"platform"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	CrawledAt  time.Time `json:"crawled_at"`
}

func (h *History) Public() *HistoryResponse {
	return &HistoryResponse{
		HistoryID:  h.HistoryID,
		PlatformID: h.PlatformID,
		Platform:   h.Platform.Name,
		Title:      h.Title,
		Price:      h.Price,
		CrawledAt:  h.CrawledAt,
	}
}

func MigrateHistory(db *gorm.DB) {
	if db.Migrator().HasTable(&History{}) {
		return
	}
	if err := db.AutoMigrate(&History{}); err != nil {
		log.Fatalf("❌ Failed to migrate History table: %v", err)
	}
	log.Println("✅ History table migrated successfully.")
}
