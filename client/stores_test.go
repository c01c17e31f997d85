package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"backend/models"
)

type notifyRecorder struct {
	mu      sync.Mutex
	entries []string
}

func (r *notifyRecorder) notifier() Notifier {
	return func(success bool, message string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		prefix := "ok: "
		if !success {
			prefix = "err: "
		}
		r.entries = append(r.entries, prefix+message)
	}
}

func (r *notifyRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1]
}

func TestAccountStorePatchesListLocally(t *testing.T) {
	var listCalls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/accounts":
			atomic.AddInt64(&listCalls, 1)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": []map[string]interface{}{
					{"account_id": 1, "username": "root", "role": "admin"},
				},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/accounts":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"account_id": 7, "username": "carol", "role": "user"},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/api/accounts/7":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"account_id": 7, "username": "carol", "role": "admin"},
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/accounts/7":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "Đã xóa tài khoản thành công",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	rec := &notifyRecorder{}
	store := NewAccountStore(New(server.URL), rec.notifier())
	if err := store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, err := store.Add(AccountInput{Username: "carol", Password: "secret123", Role: "user"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items := store.Items()
	if len(items) != 2 || items[1].Username != "carol" {
		t.Fatalf("expected the new account appended, got %+v", items)
	}
	if rec.last() != "ok: Đã thêm tài khoản carol" {
		t.Errorf("unexpected toast: %q", rec.last())
	}

	if _, err := store.Edit(7, AccountInput{Role: "admin"}); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	items = store.Items()
	if items[1].Role != "admin" {
		t.Errorf("expected the entry replaced in place, got %+v", items[1])
	}

	if err := store.Remove(7); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	items = store.Items()
	if len(items) != 1 || items[0].AccountID != 1 {
		t.Errorf("expected the entry filtered out, got %+v", items)
	}

	// Mutation vá slice tại chỗ, không refetch danh sách.
	if got := atomic.LoadInt64(&listCalls); got != 1 {
		t.Errorf("expected a single list fetch, got %d", got)
	}
}

func TestAccountStoreAddFailureNotifies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Tên đăng nhập đã tồn tại",
		})
	}))
	defer server.Close()

	rec := &notifyRecorder{}
	store := NewAccountStore(New(server.URL), rec.notifier())
	if _, err := store.Add(AccountInput{Username: "dup"}); err == nil {
		t.Fatal("expected an error")
	}
	if len(store.Items()) != 0 {
		t.Error("a failed add must not touch the list")
	}
	if !strings.Contains(rec.last(), "Tên đăng nhập đã tồn tại") {
		t.Errorf("expected the server message in the toast, got %q", rec.last())
	}
}

func TestCrawlerStoreSearchDebounced(t *testing.T) {
	names := make(chan string, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names <- r.URL.Query().Get("name")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []models.CrawlerResponse{},
		})
	}))
	defer server.Close()

	store := NewCrawlerStore(New(server.URL), nil)
	store.debounce = NewDebouncer(30 * time.Millisecond)

	store.Search("s")
	store.Search("sh")
	store.Search("shop-a")

	select {
	case got := <-names:
		if got != "shop-a" {
			t.Errorf("expected the final search term, got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the debounced fetch")
	}

	// Các lần gõ trung gian không được tạo thêm request.
	select {
	case got := <-names:
		t.Fatalf("expected a single coalesced fetch, got another with %q", got)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestProductStoreSearchResetsPage(t *testing.T) {
	type pageReq struct {
		PageIndex string
		Search    string
	}
	reqs := make(chan pageReq, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs <- pageReq{
			PageIndex: r.URL.Query().Get("pageIndex"),
			Search:    r.URL.Query().Get("search"),
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products":  []models.Product{},
			"total":     0,
			"pageIndex": 0,
			"pageSize":  12,
		})
	}))
	defer server.Close()

	store := NewProductStore(New(server.URL), nil)
	store.debounce = NewDebouncer(20 * time.Millisecond)

	if err := store.SetPage(3); err != nil {
		t.Fatalf("set page failed: %v", err)
	}
	first := <-reqs
	if first.PageIndex != "3" {
		t.Errorf("expected an immediate fetch of page 3, got %q", first.PageIndex)
	}

	store.SetSearch(ProductSearch{Name: "áo thun"})
	select {
	case second := <-reqs:
		if second.PageIndex != "0" {
			t.Errorf("a new search must reset to page 0, got %q", second.PageIndex)
		}
		if !strings.Contains(second.Search, "áo thun") {
			t.Errorf("expected the search filter forwarded, got %q", second.Search)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the debounced fetch")
	}
}
