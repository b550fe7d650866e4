package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
	api "github.com/s21platform/messenger-service/internal/rest/api"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateThread")

	var req api.CreateThreadRequest
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

	if err := h.validator.ValidateCreateThread(&req); err != nil {
		logger.Error(fmt.Sprintf("thread validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	now := time.Now()

	var created *model.Message
	var participantNames []string
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		// the caller always participates, listed or not
		names := []string{username}
		for _, participant := range req.Participants {
			if participant != username {
				names = append(names, participant)
			}
		}

		var senderID int64
		var logUserID *int64
		userIDs := make([]int64, 0, len(names))
		for _, name := range names {
			user, err := h.repository.GetOrCreateUser(ctx, name)
			if err != nil {
				logger.Error(fmt.Sprintf("failed to resolve user %s: %v", name, err))
				return err
			}

			userIDs = append(userIDs, user.ID)
			if user.Username == username {
				senderID = user.ID
			}
			if req.LogUsername != nil && user.Username == *req.LogUsername {
				id := user.ID
				logUserID = &id
			}
		}

		threadID, err := h.repository.CreateThread(ctx, req.Topic, now, logUserID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create thread: %v", err))
			return err
		}

		if err := h.repository.AddThreadMembers(ctx, threadID, userIDs); err != nil {
			logger.Error(fmt.Sprintf("failed to add thread members: %v", err))
			return err
		}

		created, err = h.repository.CreateMessage(ctx, &model.Message{
			To:        pq.StringArray{},
			From:      username,
			CreatedAt: now,
			SenderID:  &senderID,
			ThreadID:  &threadID,
			Message:   req.Message,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create first message: %v", err))
			return err
		}

		if err := h.repository.SetThreadLastMessage(ctx, threadID, created.ID, now); err != nil {
			logger.Error(fmt.Sprintf("failed to set last message: %v", err))
			return err
		}

		// the sender has implicitly seen their own message
		if err := h.repository.SetThreadRead(ctx, threadID, senderID, true); err != nil {
			logger.Error(fmt.Sprintf("failed to mark thread read for sender: %v", err))
			return err
		}

		if err := h.repository.LinkUserMessages(ctx, created.ID, userIDs); err != nil {
			logger.Error(fmt.Sprintf("failed to link users to message: %v", err))
			return err
		}

		participantNames = names
		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete thread creation transaction: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.notifyUsers(participantNames, username, created)

	h.writeJSON(w, api.MessageResponse{Message: *created}, http.StatusOK)
}

func (h *Handler) ReplyThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReplyThread")

	threadID, err := pathID(r, "threadId")
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	var req api.ReplyRequest
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

	if err := h.validator.ValidateReply(&req); err != nil {
		logger.Error(fmt.Sprintf("reply validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	now := time.Now()

	var created *model.Message
	var otherNames []string
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		thread, err := h.repository.GetThread(ctx, threadID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get thread: %v", err))
			return err
		}
		if thread == nil {
			return apperr.NotFound("thread does not exist")
		}

		sender, err := h.repository.GetOrCreateUser(ctx, username)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve sender: %v", err))
			return err
		}

		created, err = h.repository.CreateMessage(ctx, &model.Message{
			To:        pq.StringArray{},
			From:      username,
			CreatedAt: now,
			SenderID:  &sender.ID,
			ThreadID:  &thread.ID,
			Message:   req.Message,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create message: %v", err))
			return err
		}

		if err := h.repository.SetThreadLastMessage(ctx, thread.ID, created.ID, now); err != nil {
			logger.Error(fmt.Sprintf("failed to set last message: %v", err))
			return err
		}

		// the reply invalidates everyone else's read flag
		if err := h.repository.ResetThreadReadExcept(ctx, thread.ID, sender.ID); err != nil {
			logger.Error(fmt.Sprintf("failed to reset read flags: %v", err))
			return err
		}

		others, err := h.repository.GetThreadParticipants(ctx, thread.ID, username)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get participants: %v", err))
			return err
		}

		linkIDs := []int64{sender.ID}
		for _, user := range *others {
			linkIDs = append(linkIDs, user.ID)
			otherNames = append(otherNames, user.Username)
		}

		if err := h.repository.LinkUserMessages(ctx, created.ID, linkIDs); err != nil {
			logger.Error(fmt.Sprintf("failed to link users to message: %v", err))
			return err
		}

		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete reply transaction: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.notifyUsers(otherNames, username, created)

	h.writeJSON(w, api.MessageResponse{Message: *created}, http.StatusOK)
}

func (h *Handler) ShowThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ShowThread")

	threadID, err := pathID(r, "threadId")
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	username, ok := r.Context().Value(config.KeyUsername).(string)
	if !ok {
		logger.Error("failed to get username")
		h.writeError(w, "failed to get username", http.StatusInternalServerError)
		return
	}

	var messages *model.ThreadMessageList
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		thread, err := h.repository.GetThread(ctx, threadID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get thread: %v", err))
			return err
		}
		if thread == nil {
			return apperr.NotFound("thread does not exist")
		}

		viewer, err := h.repository.GetOrCreateUser(ctx, username)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve viewer: %v", err))
			return err
		}

		if err := h.repository.SetThreadRead(ctx, thread.ID, viewer.ID, true); err != nil {
			logger.Error(fmt.Sprintf("failed to mark thread read: %v", err))
			return err
		}

		messages, err = h.repository.GetThreadMessages(ctx, thread.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to fetch thread messages: %v", err))
			return err
		}

		return nil
	})
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, api.ThreadMessagesResponse{Messages: *messages}, http.StatusOK)
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListThreads")

	username, ok := r.Context().Value(config.KeyUsername).(string)
	if !ok {
		logger.Error("failed to get username")
		h.writeError(w, "failed to get username", http.StatusInternalServerError)
		return
	}

	logUsername := r.URL.Query().Get("logUsername")

	var threads *model.ThreadPreviewList
	var err error
	if logUsername == "" || logUsername == username {
		threads, err = h.repository.ListThreads(r.Context(), username)
	} else {
		threads, err = h.repository.ListThreadsForLogUser(r.Context(), username, logUsername)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list threads: %v", err))
		h.writeError(w, "failed to list threads", http.StatusInternalServerError)
		return
	}

	if len(*threads) == 0 {
		h.writeError(w, "there are no threads for the current user", http.StatusNotFound)
		return
	}

	h.writeJSON(w, api.ThreadListResponse{Threads: *threads}, http.StatusOK)
}

func (h *Handler) ThreadParticipants(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ThreadParticipants")

	threadID, err := pathID(r, "threadId")
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	username, ok := r.Context().Value(config.KeyUsername).(string)
	if !ok {
		logger.Error("failed to get username")
		h.writeError(w, "failed to get username", http.StatusInternalServerError)
		return
	}

	users, err := h.repository.GetThreadParticipants(r.Context(), threadID, username)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get participants: %v", err))
		h.writeError(w, "failed to get participants", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.ParticipantsResponse{Participants: *users}, http.StatusOK)
}
