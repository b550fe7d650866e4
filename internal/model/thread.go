package model

import "time"

type Thread struct {
	ID              int64     `db:"id" json:"id"`
	Topic           string    `db:"topic" json:"topic"`
	LastMessageSent time.Time `db:"last_message_sent" json:"lastMessageSent"`
	LastMessageID   *int64    `db:"last_message_id" json:"lastMessageId,omitempty"`
	LogUserID       *int64    `db:"log_user_id" json:"logUserId,omitempty"`
}

type ThreadPreviewList []ThreadPreview

// ThreadPreview is one row of the thread index view: the thread joined
// with its last message and the caller's read flag.
type ThreadPreview struct {
	ThreadID        int64     `db:"thread_id" json:"threadId"`
	Topic           string    `db:"topic" json:"topic"`
	LastMessageSent time.Time `db:"last_message_sent" json:"lastMessageSent"`
	LogUserID       *int64    `db:"log_user_id" json:"logUserId,omitempty"`
	LastMessageRead bool      `db:"last_message_read" json:"lastMessageRead"`
	LastMessageID   int64     `db:"last_message_id" json:"lastMessageId"`
	LastMessageFrom string    `db:"last_message_from" json:"lastMessageFrom"`
	LastMessageBody string    `db:"last_message_body" json:"lastMessageBody"`
}
