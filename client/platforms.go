package client

import (
	"fmt"
	"net/http"
	"sync"

	"backend/models"
)

type PlatformInput struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	Logo string `json:"logo,omitempty"`
}

func (c *Client) Platforms() ([]models.Platform, error) {
	var platforms []models.Platform
	if err := c.doEnvelope(http.MethodGet, "/api/platforms", nil, nil, &platforms); err != nil {
		return nil, err
	}
	return platforms, nil
}

func (c *Client) Platform(id uint64) (*models.Platform, error) {
	var platform models.Platform
	if err := c.doEnvelope(http.MethodGet, fmt.Sprintf("/api/platforms/%d", id), nil, nil, &platform); err != nil {
		return nil, err
	}
	return &platform, nil
}

func (c *Client) CreatePlatform(in PlatformInput) (*models.Platform, error) {
	var platform models.Platform
	if err := c.doEnvelope(http.MethodPost, "/api/platforms", nil, in, &platform); err != nil {
		return nil, err
	}
	return &platform, nil
}

func (c *Client) UpdatePlatform(id uint64, in PlatformInput) (*models.Platform, error) {
	var platform models.Platform
	if err := c.doEnvelope(http.MethodPut, fmt.Sprintf("/api/platforms/%d", id), nil, in, &platform); err != nil {
		return nil, err
	}
	return &platform, nil
}

func (c *Client) DeletePlatform(id uint64) error {
	return c.doEnvelope(http.MethodDelete, fmt.Sprintf("/api/platforms/%d", id), nil, nil, nil)
}

// PlatformStore giữ danh sách sàn đang hiển thị, vá cục bộ sau mỗi mutation.
type PlatformStore struct {
	mu     sync.RWMutex
	client *Client
	notify Notifier
	items  []models.Platform
}

func NewPlatformStore(c *Client, notify Notifier) *PlatformStore {
	if notify == nil {
		notify = logNotifier
	}
	return &PlatformStore{client: c, notify: notify}
}

func (s *PlatformStore) Load() error {
	platforms, err := s.client.Platforms()
	if err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	s.items = platforms
	s.mu.Unlock()
	return nil
}

func (s *PlatformStore) Items() []models.Platform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Platform, len(s.items))
	copy(out, s.items)
	return out
}

func (s *PlatformStore) Add(in PlatformInput) (*models.Platform, error) {
	platform, err := s.client.CreatePlatform(in)
	if err != nil {
		s.notify(false, err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *platform)
	s.mu.Unlock()
	s.notify(true, "Đã thêm sàn "+platform.Name)
	return platform, nil
}

func (s *PlatformStore) Edit(id uint64, in PlatformInput) (*models.Platform, error) {
	platform, err := s.client.UpdatePlatform(id, in)
	if err != nil {
		s.notify(false, err.Error())
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].PlatformID == id {
			s.items[i] = *platform
			break
		}
	}
	s.mu.Unlock()
	s.notify(true, "Đã cập nhật sàn "+platform.Name)
	return platform, nil
}

func (s *PlatformStore) Remove(id uint64) error {
	if err := s.client.DeletePlatform(id); err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.PlatformID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notify(true, "Đã xóa sàn")
	return nil
}
