package models

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	CrawlerStatusActive  = "active"
	CrawlerStatusPaused  = "paused"
	CrawlerStatusError   = "error"
	CrawlerStatusSuccess = "success"
)

// CrawlerStatuses liệt kê mọi trạng thái hợp lệ. "success" chỉ được runner
// bên ngoài set qua endpoint PATCH, dashboard không bao giờ tự chuyển vào đó.
var CrawlerStatuses = []string{
	CrawlerStatusActive,
	CrawlerStatusPaused,
	CrawlerStatusError,
	CrawlerStatusSuccess,
}

func IsCrawlerStatus(s string) bool {
	for _, status := range CrawlerStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Crawler struct {
	CrawlerID  uint64    `gorm:"primaryKey;autoIncrement;column:crawler_id" json:"crawler_id"`
	Name       string    `gorm:"type:varchar(255);uniqueIndex:idx_crawlers_name;not null" json:"name"`
	PlatformID uint64    `gorm:"not null" json:"platform_id"`
	Platform   Platform  `gorm:"foreignKey:PlatformID;references:PlatformID" json:"-"`
	Metadata   string    `gorm:"type:text" json:"metadata"`
	Status     string    `gorm:"type:varchar(16);default:paused" json:"status"`
	LastRun    time.Time `gorm:"autoCreateTime" json:"last_run"`
}

// CrawlerResponse phẳng hoá tên sàn vào kết quả như câu JOIN ở màn hình danh sách.
type CrawlerResponse struct {
	CrawlerID  uint64    `json:"crawler_id"`
	Name       string    `json:"name"`
	PlatformID uint64    `json:"platform_id"`
	Platform   string    `json:"platform"`
	Metadata   string    `json:"metadata"`
	Status     string    `json:"status"`
	LastRun    time.Time `json:"last_run"`
}

func (cr *Crawler) Public() *CrawlerResponse {
	return &CrawlerResponse{
		CrawlerID:  cr.CrawlerID,
		Name:       cr.Name,
		PlatformID: cr.PlatformID,
		Platform:   cr.Platform.Name,
		Metadata:   cr.Metadata,
		Status:     cr.Status,
		LastRun:    cr.LastRun,
	}
}

// CrawlerMetadata holds the opaque pipeline config. Operators paste either a
// JSON pipeline or free text; it is parsed exactly once, here.
type CrawlerMetadata struct {
	Raw    string
	Parsed interface{}
}

func ParseMetadata(raw string) CrawlerMetadata {
	m := CrawlerMetadata{Raw: raw}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		m.Parsed = v
	}
	return m
}

// RunnerValue is what gets sent to the crawler runner: the structured value
// when the metadata was valid JSON, the raw string otherwise.
func (m CrawlerMetadata) RunnerValue() interface{} {
	if m.Parsed != nil {
		return m.Parsed
	}
	return m.Raw
}

func MigrateCrawler(db *gorm.DB) {
	if db.Migrator().HasTable(&Crawler{}) {
		return
	}
	if err := db.AutoMigrate(&Crawler{}); err != nil {
		log.Fatalf("❌ Failed to migrate Crawler table: %v", err)
	}
	log.Println("✅ Crawler table migrated successfully.")
}
