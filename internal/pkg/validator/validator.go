package validator

import (
	"strings"

	api "github.com/s21platform/messenger-service/internal/rest/api"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateThread(req *api.CreateThreadRequest) error {
	if len(req.Participants) == 0 {
		return apperr.Validation("there are no participants to create a thread")
	}

	for _, participant := range req.Participants {
		if strings.TrimSpace(participant) == "" {
			return apperr.Validation("participant username cannot be empty")
		}
	}

	if strings.TrimSpace(req.Topic) == "" {
		return apperr.Validation("topic is required")
	}

	return nil
}

func (v *Validator) ValidateReply(req *api.ReplyRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return apperr.Validation("message cannot be empty")
	}

	return nil
}
