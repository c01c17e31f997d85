package client

import (
	"fmt"
	"net/http"
	"sync"

	"backend/models"
)

type AccountInput struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (c *Client) Accounts() ([]models.AccountResponse, error) {
	var accounts []models.AccountResponse
	if err := c.doEnvelope(http.MethodGet, "/api/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) Account(id uint64) (*models.AccountResponse, error) {
	var account models.AccountResponse
	if err := c.doEnvelope(http.MethodGet, fmt.Sprintf("/api/accounts/%d", id), nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) CreateAccount(in AccountInput) (*models.AccountResponse, error) {
	var account models.AccountResponse
	if err := c.doEnvelope(http.MethodPost, "/api/accounts", nil, in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) UpdateAccount(id uint64, in AccountInput) (*models.AccountResponse, error) {
	var account models.AccountResponse
	if err := c.doEnvelope(http.MethodPut, fmt.Sprintf("/api/accounts/%d", id), nil, in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(id uint64) error {
	return c.doEnvelope(http.MethodDelete, fmt.Sprintf("/api/accounts/%d", id), nil, nil, nil)
}

// AccountStore giữ danh sách tài khoản đang hiển thị. Add/Edit/Remove gọi API
// rồi vá thẳng slice đang giữ (append / thay theo id / lọc ra) thay vì refetch.
type AccountStore struct {
	mu     sync.RWMutex
	client *Client
	notify Notifier
	items  []models.AccountResponse
}

func NewAccountStore(c *Client, notify Notifier) *AccountStore {
	if notify == nil {
		notify = logNotifier
	}
	return &AccountStore{client: c, notify: notify}
}

func (s *AccountStore) Load() error {
	accounts, err := s.client.Accounts()
	if err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	s.items = accounts
	s.mu.Unlock()
	return nil
}

func (s *AccountStore) Items() []models.AccountResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AccountResponse, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AccountStore) Add(in AccountInput) (*models.AccountResponse, error) {
	account, err := s.client.CreateAccount(in)
	if err != nil {
		s.notify(false, err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *account)
	s.mu.Unlock()
	s.notify(true, "Đã thêm tài khoản "+account.Username)
	return account, nil
}

func (s *AccountStore) Edit(id uint64, in AccountInput) (*models.AccountResponse, error) {
	account, err := s.client.UpdateAccount(id, in)
	if err != nil {
		s.notify(false, err.Error())
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].AccountID == id {
			s.items[i] = *account
			break
		}
	}
	s.mu.Unlock()
	s.notify(true, "Đã cập nhật tài khoản "+account.Username)
	return account, nil
}

func (s *AccountStore) Remove(id uint64) error {
	if err := s.client.DeleteAccount(id); err != nil {
		s.notify(false, err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.AccountID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notify(true, "Đã xóa tài khoản")
	return nil
}
