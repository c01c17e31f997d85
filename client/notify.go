package client

import "log"

// Notifier nhận kết quả của một thao tác để hiển thị cho người dùng - tương
// đương toast trên UI. Store nào không gắn notifier thì chỉ ghi log.
type Notifier func(success bool, message string)

func logNotifier(success bool, message string) {
	if success {
		log.Printf("✅ %s", message)
	} else {
		log.Printf("❌ %s", message)
	}
}
