package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/messenger-service/internal/model"
)

const messageColumns = "id, to_users, from_user, subject, message, owner, created_at, read_at, is_archived, is_deleted, sender_id, thread_id"

func (r *Repository) CreateMessage(ctx context.Context, message *model.Message) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("to_users", "from_user", "subject", "message", "owner", "created_at", "read_at", "sender_id", "thread_id").
		Values(message.To, message.From, message.Subject, message.Message, message.Owner, message.CreatedAt, message.ReadAt, message.SenderID, message.ThreadID).
		Suffix("RETURNING " + messageColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var saved model.Message
	err = r.Chk(ctx).GetContext(ctx, &saved, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	return &saved, nil
}

func (r *Repository) CreateMessages(ctx context.Context, messages []model.Message) error {
	if len(messages) == 0 {
		return nil
	}

	query := sq.Insert("messages").
		Columns("to_users", "from_user", "subject", "message", "owner", "created_at", "read_at", "sender_id", "thread_id").
		PlaceholderFormat(sq.Dollar)

	for _, message := range messages {
		query = query.Values(message.To, message.From, message.Subject, message.Message, message.Owner, message.CreatedAt, message.ReadAt, message.SenderID, message.ThreadID)
	}

	q, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("failed to save messages: %v", err)
	}

	return nil
}

func (r *Repository) LinkUserMessages(ctx context.Context, messageID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	query := sq.Insert("user_messages").
		Columns("user_id", "message_id").
		Suffix("ON CONFLICT (user_id, message_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, userID := range userIDs {
		query = query.Values(userID, messageID)
	}

	q, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, q, args...)
	return err
}

// GetMessage returns nil without error when the row is absent or
// soft-deleted.
func (r *Repository) GetMessage(ctx context.Context, messageID int64) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns).
		From("messages").
		Where(sq.And{
			sq.Eq{"id": messageID},
			sq.Eq{"is_deleted": false},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// MarkMessageRead is a no-op when read_at is already set, keeping the
// first timestamp.
func (r *Repository) MarkMessageRead(ctx context.Context, messageID int64, readAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("read_at", readAt).
		Where(sq.And{
			sq.Eq{"id": messageID},
			sq.Eq{"read_at": nil},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) MarkMessageUnread(ctx context.Context, messageID int64) error {
	query, args, err := sq.Update("messages").
		Set("read_at", nil).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) SetMessageArchived(ctx context.Context, messageID int64, archived bool) error {
	query, args, err := sq.Update("messages").
		Set("is_archived", archived).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

// SoftDeleteMessage hides the row from default reads. Deletion implies
// the archived flag stays set.
func (r *Repository) SoftDeleteMessage(ctx context.Context, messageID int64) error {
	query, args, err := sq.Update("messages").
		Set("is_deleted", true).
		Set("is_archived", true).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) ListMessages(ctx context.Context, filter model.MessageFilter) (*model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns).
		From("messages").
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("id ASC")

	if filter.From != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"from_user": filter.From})
	}

	if filter.Sent {
		queryBuilder = queryBuilder.Where(sq.Eq{"from_user": filter.Owner})
	}

	if filter.Received {
		queryBuilder = queryBuilder.Where(sq.Expr("? = ANY(to_users)", filter.Owner))
	}

	if filter.Unread {
		queryBuilder = queryBuilder.Where(sq.Eq{"read_at": nil})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		queryBuilder = queryBuilder.Offset(filter.Offset)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return &messages, nil
}

func (r *Repository) CountMessages(ctx context.Context, owner string) (*model.MessageCount, error) {
	query, args, err := sq.Select(
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE read_at IS NULL) AS unread",
	).
		From("messages").
		Where(sq.And{
			sq.Eq{"owner": owner},
			sq.Eq{"is_deleted": false},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count model.MessageCount
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %v", err)
	}

	return &count, nil
}
