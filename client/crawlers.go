package client

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"backend/models"
)

type CrawlerInput struct {
	Name       string `json:"name,omitempty"`
	PlatformID uint64 `json:"platform_id,omitempty"`
	Metadata   string `json:"metadata,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (c *Client) Crawlers(name string) ([]models.CrawlerResponse, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	var crawlers []models.CrawlerResponse
	if err := c.doEnvelope(http.MethodGet, "/api/crawlers", query, nil, &crawlers); err != nil {
		return nil, err
	}
	return crawlers, nil
}

func (c *Client) Crawler(id uint64) (*models.CrawlerResponse, error) {
	var crawler models.CrawlerResponse
	if err := c.doEnvelope(http.MethodGet, fmt.Sprintf("/api/crawlers/%d", id), nil, nil, &crawler); err != nil {
		return nil, err
	}
	return &crawler, nil
}

func (c *Client) CreateCrawler(in CrawlerInput) (*models.CrawlerResponse, error) {
	var crawler models.CrawlerResponse
	if err := c.doEnvelope(http.MethodPost, "/api/crawlers", nil, in, &crawler); err != nil {
		return nil, err
	}
	return &crawler, nil
}

func (c *Client) UpdateCrawler(id uint64, in CrawlerInput) (*models.CrawlerResponse, error) {
	var crawler models.CrawlerResponse
	if err := c.doEnvelope(http.MethodPut, fmt.Sprintf("/api/crawlers/%d", id), nil, in, &crawler); err != nil {
		return nil, err
	}
	return &crawler, nil
}

func (c *Client) DeleteCrawler(id uint64) error {
	return c.doEnvelope(http.MethodDelete, fmt.Sprintf("/api/crawlers/%d", id), nil, nil, nil)
}

// SetCrawlerStatus là PATCH trạng thái thuần, đường mà runner dùng để báo
// error/success.
func (c *Client) SetCrawlerStatus(id uint64, status string) (*models.CrawlerResponse, error) {
	var crawler models.CrawlerResponse
	err := c.doEnvelope(http.MethodPatch, fmt.Sprintf("/api/crawlers/%d", id), nil,
		map[string]string{"status": status}, &crawler)
	if err != nil {
		return nil, err
	}
	return &crawler, nil
}

// CrawlerStore giữ danh sách crawler đang hiển thị, có tìm kiếm theo tên với
// debounce 500ms như ô search trên trang.
type CrawlerStore struct {
	mu       sync.RWMutex
	client   *Client
	notify   Notifier
	debounce *Debouncer
	search   string
	items    []models.CrawlerResponse
}

func NewCrawlerStore(c *Client, notify Notifier) *CrawlerStore {
	if notify == nil {
		notify = logNotifier
	}
	return &CrawlerStore{client: c, notify: notify, debounce: NewDebouncer(DefaultSearchDelay)}
}

func (s *CrawlerStore) Load() error {
	s.mu.RLock()
	search := s.search
	s.mu.RUnlock()

	crawlers, err := s.client.Crawlers(search)
	if err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	s.items = crawlers
	s.mu.Unlock()
	return nil
}

// Search đổi filter tên và refetch sau khi người dùng ngừng gõ. Fetch đang
// bay không bị huỷ; response về muộn có thể ghi đè kết quả mới hơn.
func (s *CrawlerStore) Search(name string) {
	s.mu.Lock()
	s.search = name
	s.mu.Unlock()
	s.debounce.Do(func() { _ = s.Load() })
}

func (s *CrawlerStore) Items() []models.CrawlerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CrawlerResponse, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CrawlerStore) Add(in CrawlerInput) (*models.CrawlerResponse, error) {
	crawler, err := s.client.CreateCrawler(in)
	if err != nil {
		s.notify(false, err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *crawler)
	s.mu.Unlock()
	s.notify(true, "Đã thêm crawler "+crawler.Name)
	return crawler, nil
}

func (s *CrawlerStore) Edit(id uint64, in CrawlerInput) (*models.CrawlerResponse, error) {
	crawler, err := s.client.UpdateCrawler(id, in)
	if err != nil {
		s.notify(false, err.Error())
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].CrawlerID == id {
			s.items[i] = *crawler
			break
		}
	}
	s.mu.Unlock()
	s.notify(true, "Đã cập nhật crawler "+crawler.Name)
	return crawler, nil
}

func (s *CrawlerStore) Remove(id uint64) error {
	if err := s.client.DeleteCrawler(id); err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.CrawlerID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notify(true, "Đã xóa crawler")
	return nil
}
