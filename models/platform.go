package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Platform là một sàn thương mại điện tử đang được theo dõi.
type Platform struct {
	PlatformID uint64    `gorm:"primaryKey;autoIncrement;column:platform_id" json:"platform_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	URL        string    `gorm:"not null" json:"url"`
	Logo       string    `json:"logo"`
	CreatedAt  time.Time `json:"created_at"`
}

func MigratePlatform(db *gorm.DB) {
	if db.Migrator().HasTable(&Platform{}) {
		return
	}
	if err := db.AutoMigrate(&Platform{}); err != nil {
		log.Fatalf("❌ Failed to migrate Platform table: %v", err)
	}
	log.Println("✅ Platform table migrated successfully.")
}
