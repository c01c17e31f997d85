package client

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"backend/models"
)

// ProductSearch là filter gửi lên dưới dạng JSON trong query param `search`.
type ProductSearch struct {
	Name             string `json:"name,omitempty"`
	PlatformID       uint64 `json:"platform_id,omitempty"`
	PriceChangeOrder string `json:"priceChangeOrder,omitempty"`
	FromDate         string `json:"fromDate,omitempty"`
	ToDate           string `json:"toDate,omitempty"`
}

type ProductPage struct {
	Products  []models.Product `json:"products"`
	Total     int64            `json:"total"`
	PageIndex int              `json:"pageIndex"`
	PageSize  int              `json:"pageSize"`
}

func (c *Client) Products(pageIndex, pageSize int, search ProductSearch) (*ProductPage, error) {
	query := url.Values{}
	query.Set("pageIndex", strconv.Itoa(pageIndex))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if search != (ProductSearch{}) {
		raw, err := json.Marshal(search)
		if err != nil {
			return nil, err
		}
		query.Set("search", string(raw))
	}

	var page ProductPage
	if err := c.do(http.MethodGet, "/api/products", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductStore giữ trang sản phẩm hiện tại; đổi filter được debounce 500ms,
// đổi trang thì fetch ngay.
type ProductStore struct {
	mu       sync.RWMutex
	client   *Client
	notify   Notifier
	debounce *Debouncer

	pageIndex int
	pageSize  int
	search    ProductSearch

	items []models.Product
	total int64
}

func NewProductStore(c *Client, notify Notifier) *ProductStore {
	if notify == nil {
		notify = logNotifier
	}
	return &ProductStore{
		client:   c,
		notify:   notify,
		debounce: NewDebouncer(DefaultSearchDelay),
		pageSize: 12,
	}
}

func (s *ProductStore) Load() error {
	s.mu.RLock()
	pageIndex, pageSize, search := s.pageIndex, s.pageSize, s.search
	s.mu.RUnlock()

	page, err := s.client.Products(pageIndex, pageSize, search)
	if err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	s.items = page.Products
	s.total = page.Total
	s.mu.Unlock()
	return nil
}

// SetSearch đổi filter và refetch sau khi người dùng ngừng gõ.
func (s *ProductStore) SetSearch(search ProductSearch) {
	s.mu.Lock()
	s.search = search
	s.pageIndex = 0
	s.mu.Unlock()
	s.debounce.Do(func() { _ = s.Load() })
}

func (s *ProductStore) SetPage(pageIndex int) error {
	s.mu.Lock()
	if pageIndex < 0 {
		pageIndex = 0
	}
	s.pageIndex = pageIndex
	s.mu.Unlock()
	return s.Load()
}

func (s *ProductStore) Items() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ProductStore) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}
