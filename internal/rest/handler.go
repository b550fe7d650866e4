package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
	api "github.com/s21platform/messenger-service/internal/rest/api"
)

type Handler struct {
	repository   DBRepo
	notification NotificationClient
	validator    Validator
}

func New(repo DBRepo, notification NotificationClient, validator Validator) *Handler {
	return &Handler{
		repository:   repo,
		notification: notification,
		validator:    validator,
	}
}

func AttachRoutes(router chi.Router, h *Handler) {
	router.Route("/threads", func(r chi.Router) {
		r.Post("/", h.CreateThread)
		r.Get("/", h.ListThreads)
		r.Post("/thread/{threadId}/reply", h.ReplyThread)
		r.Get("/thread/{threadId}", h.ShowThread)
		r.Get("/thread/participants/{threadId}", h.ThreadParticipants)
	})

	router.Route("/message", func(r chi.Router) {
		r.Post("/send", h.SendMessage)
		r.Get("/get/{messageId}", h.GetMessage)
		r.Get("/list", h.ListMessages)
		r.Get("/count", h.CountMessages)
		r.Delete("/delete/{messageId}", h.DeleteMessage)
		r.Put("/archive/{messageId}", h.ArchiveMessage)
		r.Put("/unarchive/{messageId}", h.UnarchiveMessage)
		r.Put("/markAsRead/{messageId}", h.MarkMessageAsRead)
		r.Put("/markAsUnread/{messageId}", h.MarkMessageAsUnread)
	})
}

// notifyUsers pushes a "new message" notification to every recipient except
// the sender. Best effort, never blocks or fails the request.
func (h *Handler) notifyUsers(usernames []string, sender string, message *model.Message) {
	var batch []model.PushNotification
	for _, username := range usernames {
		if username == sender {
			continue
		}
		batch = append(batch, model.PushNotification{
			Username:         username,
			NotificationType: model.NewMessageNotificationType,
			Data: model.PushNotificationData{
				Title: fmt.Sprintf("%s sent you a message", sender),
				Body:  message.Message,
			},
		})
	}

	h.notification.SendPushNotifications(batch)
}

// ----------------------------- helpers -----------------------------

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperr.Validation(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func (h *Handler) writeAppError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.writeError(w, "internal error", status)
		return
	}
	h.writeError(w, err.Error(), status)
}
