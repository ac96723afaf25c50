package models

import "time"

// Thread is a fixed manager-supplier conversation channel. The two
// participant roles never change for the lifetime of the thread.
type Thread struct {
	ID           string    `json:"id"`
	ManagerID    int       `json:"managerId"`
	ManagerName  string    `json:"managerName"`
	SupplierID   int       `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	Topic        string    `json:"topic,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Message is one chat entry. ReadBy holds the ids of users who have viewed
// it; it only ever grows.
type Message struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"threadId"`
	FromUserID int       `json:"fromUserId"`
	FromRole   Role      `json:"fromRole"`
	ToUserID   int       `json:"toUserId"`
	ToRole     Role      `json:"toRole"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
	ReadBy     []int     `json:"readBy"`
}

// ReadByUser reports whether userID is present in the message's read set.
func (m *Message) ReadByUser(userID int) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ThreadWithLast pairs a thread with its most recent message, if any.
// It is a derived projection and is never persisted.
type ThreadWithLast struct {
	Thread
	LastMessage *Message `json:"lastMessage,omitempty"`
}
