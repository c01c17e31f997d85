package client

import (
	"sync"
	"time"
)

// DefaultSearchDelay là khoảng chờ sau lần gõ cuối trước khi refetch.
const DefaultSearchDelay = 500 * time.Millisecond

// Debouncer hoãn một hàm đến khi caller ngừng gọi trong `delay`. Mỗi lần Do
// huỷ timer trước đó; fetch đang bay không bị huỷ nên response về muộn vẫn có
// thể ghi đè (giống hành vi của ô tìm kiếm trên UI).
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop huỷ lần gọi đang chờ, nếu có.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
