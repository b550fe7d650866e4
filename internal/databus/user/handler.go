// Package user consumes platform user events and keeps the local user
// table's external identity column in sync.
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
)

type DBRepo interface {
	SetUserUUID(ctx context.Context, username, userUUID string) error
}

type UserEvent struct {
	Username string `json:"username"`
	UUID     string `json:"uuid"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserEventHandler")

	var event UserEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return
	}

	if event.Username == "" || event.UUID == "" {
		logger.Warn("user event without username or uuid, skipping")
		return
	}

	if err := h.repository.SetUserUUID(ctx, event.Username, event.UUID); err != nil {
		logger.Error(fmt.Sprintf("failed to backfill uuid for %s: %v", event.Username, err))
	}
}
