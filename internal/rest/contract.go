//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/s21platform/messenger-service/internal/model"
	api "github.com/s21platform/messenger-service/internal/rest/api"
)

type DBRepo interface {
	GetOrCreateUser(ctx context.Context, username string) (*model.User, error)

	CreateThread(ctx context.Context, topic string, lastMessageSent time.Time, logUserID *int64) (int64, error)
	GetThread(ctx context.Context, threadID int64) (*model.Thread, error)
	AddThreadMembers(ctx context.Context, threadID int64, userIDs []int64) error
	SetThreadLastMessage(ctx context.Context, threadID, messageID int64, sentAt time.Time) error
	SetThreadRead(ctx context.Context, threadID, userID int64, read bool) error
	ResetThreadReadExcept(ctx context.Context, threadID, exceptUserID int64) error
	GetThreadMessages(ctx context.Context, threadID int64) (*model.ThreadMessageList, error)
	GetThreadParticipants(ctx context.Context, threadID int64, excludeUsername string) (*model.UserList, error)
	ListThreads(ctx context.Context, username string) (*model.ThreadPreviewList, error)
	ListThreadsForLogUser(ctx context.Context, username, logUsername string) (*model.ThreadPreviewList, error)

	CreateMessage(ctx context.Context, message *model.Message) (*model.Message, error)
	CreateMessages(ctx context.Context, messages []model.Message) error
	LinkUserMessages(ctx context.Context, messageID int64, userIDs []int64) error
	GetMessage(ctx context.Context, messageID int64) (*model.Message, error)
	MarkMessageRead(ctx context.Context, messageID int64, readAt time.Time) error
	MarkMessageUnread(ctx context.Context, messageID int64) error
	SetMessageArchived(ctx context.Context, messageID int64, archived bool) error
	SoftDeleteMessage(ctx context.Context, messageID int64) error
	ListMessages(ctx context.Context, filter model.MessageFilter) (*model.MessageList, error)
	CountMessages(ctx context.Context, owner string) (*model.MessageCount, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type NotificationClient interface {
	SendPushNotifications(batch []model.PushNotification)
}

type Validator interface {
	ValidateCreateThread(req *api.CreateThreadRequest) error
	ValidateReply(req *api.ReplyRequest) error
}
