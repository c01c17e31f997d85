// Package client là API client cho dashboard: fetch wrapper giữ cookie phiên,
// các store danh sách per-resource cập nhật lạc quan và debouncer cho ô tìm
// kiếm.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"backend/models"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	// Cookie jar giữ auth-token sau khi Login, giống trình duyệt.
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second, Jar: jar},
	}
}

// APIError là lỗi từ server, giữ status và message để hiển thị toast.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%d]: %s", e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) do(method, path string, query url.Values, body interface{}, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// doEnvelope bóc {success, data} và decode data vào out.
func (c *Client) doEnvelope(method, path string, query url.Values, body interface{}, out interface{}) error {
	var env envelope
	if err := c.do(method, path, query, body, &env); err != nil {
		return err
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Error) > 0 {
		var msg string
		if err := json.Unmarshal(env.Error, &msg); err == nil {
			return msg
		}
		// Danh sách field errors: dùng message đầu tiên.
		var fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(env.Error, &fields); err == nil && len(fields) > 0 {
			return fields[0].Message
		}
		return string(env.Error)
	}
	return string(raw)
}

// Login xác thực và giữ cookie phiên trong jar cho các call sau.
func (c *Client) Login(username, password string) (*models.AccountResponse, error) {
	var account models.AccountResponse
	err := c.doEnvelope(http.MethodPost, "/api/auth/login", nil, map[string]string{
		"username": username,
		"password": password,
	}, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) Logout() error {
	return c.doEnvelope(http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
