package client

import (
	"encoding/json"
	"net/http"
	"net/url"

	"backend/models"
)

// HistorySearch là filter cho chuỗi giá: bắt buộc tên sản phẩm, tuỳ chọn sàn
// và khoảng ngày.
type HistorySearch struct {
	ProductName string `json:"product_name"`
	PlatformID  uint64 `json:"platform_id,omitempty"`
	FromDate    string `json:"fromDate,omitempty"`
	ToDate      string `json:"toDate,omitempty"`
}

// Histories lấy toàn bộ mẫu giá khớp filter, crawled_at tăng dần để vẽ chart.
func (c *Client) Histories(search HistorySearch) ([]models.HistoryResponse, error) {
	raw, err := json.Marshal(search)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("search", string(raw))

	var histories []models.HistoryResponse
	if err := c.doEnvelope(http.MethodGet, "/api/histories", query, nil, &histories); err != nil {
		return nil, err
	}
	return histories, nil
}
