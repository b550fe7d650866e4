package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
	api "github.com/s21platform/messenger-service/internal/rest/api"
)

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	username, ok := r.Context().Value(config.KeyUsername).(string)
	if !ok {
		logger.Error("failed to get username")
		h.writeError(w, "failed to get username", http.StatusInternalServerError)
		return
	}

	now := time.Now()

	var senderCopy *model.Message
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		// one copy per recipient, each filed under that recipient's mailbox
		fanout := make([]model.Message, 0, len(req.To))
		for _, recipient := range req.To {
			fanout = append(fanout, model.Message{
				To:        pq.StringArray(req.To),
				From:      username,
				Subject:   req.Subject,
				Message:   req.Message,
				Owner:     recipient,
				CreatedAt: now,
			})
		}

		if err := h.repository.CreateMessages(ctx, fanout); err != nil {
			logger.Error(fmt.Sprintf("failed to fan out message: %v", err))
			return err
		}

		// the sender's own copy is born read
		var err error
		senderCopy, err = h.repository.CreateMessage(ctx, &model.Message{
			To:        pq.StringArray(req.To),
			From:      username,
			Subject:   req.Subject,
			Message:   req.Message,
			Owner:     username,
			CreatedAt: now,
			ReadAt:    &now,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to save sender copy: %v", err))
			return err
		}

		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete send transaction: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.notifyUsers(req.To, username, senderCopy)

	h.writeJSON(w, senderCopy, http.StatusOK)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessage")

	message, ok := h.loadMessage(w, r, logger)
	if !ok {
		return
	}

	// retrieval counts as reading
	if message.ReadAt == nil {
		now := time.Now()
		if err := h.repository.MarkMessageRead(r.Context(), message.ID, now); err != nil {
			logger.Error(fmt.Sprintf("failed to mark message read: %v", err))
			h.writeError(w, "failed to mark message read", http.StatusInternalServerError)
			return
		}
		message.ReadAt = &now
	}

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListMessages")

	username, ok := r.Context().Value(config.KeyUsername).(string)
	if !ok {
		logger.Error("failed to get username")
		h.writeError(w, "failed to get username", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	filter := model.MessageFilter{
		Owner:    username,
		From:     query.Get("from"),
		Sent:     query.Get("sent") == "true",
		Received: query.Get("received") == "true",
		Unread:   query.Get("unread") == "true",
	}

	if limit, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.ParseUint(query.Get("offset"), 10, 64); err == nil {
		filter.Offset = offset
	}

	messages, err := h.repository.ListMessages(r.Context(), filter)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list messages: %v", err))
		h.writeError(w, "failed to list messages", http.StatusInternalServerError)
		return
	}

	if query.Get("summary") == "true" {
		summaries := make([]api.MessageSummary, len(*messages))
		for i, message := range *messages {
			summaries[i] = api.MessageSummary{
				ID:      message.ID,
				From:    message.From,
				Subject: message.Subject,
			}
		}
		h.writeJSON(w, summaries, http.StatusOK)
		return
	}

	h.writeJSON(w, *messages, http.StatusOK)
}

func (h *Handler) CountMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CountMessages")

	username, ok := r.Context().Value(config.KeyUsername).(string)
	if !ok {
		logger.Error("failed to get username")
		h.writeError(w, "failed to get username", http.StatusInternalServerError)
		return
	}

	count, err := h.repository.CountMessages(r.Context(), username)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count messages: %v", err))
		h.writeError(w, "failed to count messages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, count, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	message, ok := h.loadMessage(w, r, logger)
	if !ok {
		return
	}

	if err := h.repository.SoftDeleteMessage(r.Context(), message.ID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeError(w, "failed to delete message", http.StatusInternalServerError)
		return
	}

	message.IsDeleted = true
	message.IsArchived = true

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) ArchiveMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ArchiveMessage")

	h.setArchived(w, r, logger, true)
}

// UnarchiveMessage fails with not-found on soft-deleted messages: the
// default read scope hides them.
func (h *Handler) UnarchiveMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnarchiveMessage")

	h.setArchived(w, r, logger, false)
}

func (h *Handler) setArchived(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, archived bool) {
	message, ok := h.loadMessage(w, r, logger)
	if !ok {
		return
	}

	if err := h.repository.SetMessageArchived(r.Context(), message.ID, archived); err != nil {
		logger.Error(fmt.Sprintf("failed to update archive flag: %v", err))
		h.writeError(w, "failed to update archive flag", http.StatusInternalServerError)
		return
	}

	message.IsArchived = archived

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) MarkMessageAsRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkMessageAsRead")

	message, ok := h.loadMessage(w, r, logger)
	if !ok {
		return
	}

	// idempotent, the first read timestamp wins
	if message.ReadAt == nil {
		now := time.Now()
		if err := h.repository.MarkMessageRead(r.Context(), message.ID, now); err != nil {
			logger.Error(fmt.Sprintf("failed to mark message read: %v", err))
			h.writeError(w, "failed to mark message read", http.StatusInternalServerError)
			return
		}
		message.ReadAt = &now
	}

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) MarkMessageAsUnread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkMessageAsUnread")

	message, ok := h.loadMessage(w, r, logger)
	if !ok {
		return
	}

	if err := h.repository.MarkMessageUnread(r.Context(), message.ID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark message unread: %v", err))
		h.writeError(w, "failed to mark message unread", http.StatusInternalServerError)
		return
	}

	message.ReadAt = nil

	h.writeJSON(w, message, http.StatusOK)
}

// loadMessage resolves the path id to a live (not soft-deleted) message,
// writing the error response itself when that fails.
func (h *Handler) loadMessage(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface) (*model.Message, bool) {
	messageID, err := pathID(r, "messageId")
	if err != nil {
		h.writeAppError(w, err)
		return nil, false
	}

	message, err := h.repository.GetMessage(r.Context(), messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeError(w, "failed to get message", http.StatusInternalServerError)
		return nil, false
	}
	if message == nil {
		h.writeAppError(w, apperr.NotFound("message does not exist"))
		return nil, false
	}

	return message, true
}
