// Package api holds the request and response bodies of the REST surface.
package api

import "github.com/s21platform/messenger-service/internal/model"

type CreateThreadRequest struct {
	Participants []string `json:"participants"`
	Topic        string   `json:"topic"`
	Message      string   `json:"message"`
	LogUsername  *string  `json:"logUsername,omitempty"`
}

type ReplyRequest struct {
	Message string `json:"message"`
}

type SendMessageRequest struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Message string   `json:"message"`
}

type MessageResponse struct {
	Message model.Message `json:"message"`
}

type ThreadMessagesResponse struct {
	Messages []model.ThreadMessage `json:"messages"`
}

type ThreadListResponse struct {
	Threads []model.ThreadPreview `json:"threads"`
}

type ParticipantsResponse struct {
	Participants []model.User `json:"participants"`
}

// MessageSummary is the reduced list item returned when summary=true.
type MessageSummary struct {
	ID      int64  `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
}

type Error struct {
	Error string `json:"error"`
}
