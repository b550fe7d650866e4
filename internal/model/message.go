package model

import (
	"time"

	"github.com/lib/pq"
)

type MessageList []Message

type Message struct {
	ID         int64          `db:"id" json:"id"`
	To         pq.StringArray `db:"to_users" json:"to"`
	From       string         `db:"from_user" json:"from"`
	Subject    string         `db:"subject" json:"subject"`
	Message    string         `db:"message" json:"message"`
	Owner      string         `db:"owner" json:"owner"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
	ReadAt     *time.Time     `db:"read_at" json:"readAt"`
	IsArchived bool           `db:"is_archived" json:"isArchived"`
	IsDeleted  bool           `db:"is_deleted" json:"isDeleted"`
	SenderID   *int64         `db:"sender_id" json:"senderId,omitempty"`
	ThreadID   *int64         `db:"thread_id" json:"threadId,omitempty"`
}

type ThreadMessageList []ThreadMessage

// ThreadMessage is a message joined with its sender's user record.
type ThreadMessage struct {
	Message
	Sender User `db:"sender" json:"sender"`
}

// MessageFilter narrows the caller's message list. Owner is always the
// requesting user.
type MessageFilter struct {
	Owner    string
	From     string
	Sent     bool
	Received bool
	Unread   bool
	Limit    uint64
	Offset   uint64
}

type MessageCount struct {
	Total  int64 `db:"total" json:"total"`
	Unread int64 `db:"unread" json:"unread"`
}
