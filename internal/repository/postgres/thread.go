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

// Thread index views. The joins follow the original denormalized shape:
// one row per thread of the requesting user, carrying the last message.
const (
	listThreadsQuery = `
		SELECT t.id AS thread_id,
		       t.topic,
		       t.last_message_sent,
		       t.log_user_id,
		       ut.last_message_read,
		       lm.id AS last_message_id,
		       lm.from_user AS last_message_from,
		       lm.message AS last_message_body
		FROM users u
		INNER JOIN user_threads ut ON u.id = ut.user_id
		INNER JOIN threads t ON ut.thread_id = t.id AND (t.log_user_id = u.id OR t.log_user_id IS NULL)
		INNER JOIN messages lm ON t.last_message_id = lm.id
		WHERE u.username = $1
		ORDER BY t.last_message_sent DESC`

	listThreadsForLogUserQuery = `
		SELECT t.id AS thread_id,
		       t.topic,
		       t.last_message_sent,
		       t.log_user_id,
		       ut.last_message_read,
		       lm.id AS last_message_id,
		       lm.from_user AS last_message_from,
		       lm.message AS last_message_body
		FROM users u
		INNER JOIN user_threads ut ON u.id = ut.user_id
		INNER JOIN threads t ON ut.thread_id = t.id
		INNER JOIN users lu ON t.log_user_id = lu.id
		INNER JOIN messages lm ON t.last_message_id = lm.id
		WHERE u.username = $1 AND lu.username = $2
		ORDER BY t.last_message_sent DESC`
)

func (r *Repository) CreateThread(ctx context.Context, topic string, lastMessageSent time.Time, logUserID *int64) (int64, error) {
	query, args, err := sq.Insert("threads").
		Columns("topic", "last_message_sent", "log_user_id").
		Values(topic, lastMessageSent, logUserID).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var threadID int64
	err = r.Chk(ctx).GetContext(ctx, &threadID, query, args...)
	if err != nil {
		return 0, err
	}

	return threadID, nil
}

// GetThread returns nil without error when the thread does not exist.
func (r *Repository) GetThread(ctx context.Context, threadID int64) (*model.Thread, error) {
	query, args, err := sq.Select("id", "topic", "last_message_sent", "last_message_id", "log_user_id").
		From("threads").
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thread model.Thread
	err = r.Chk(ctx).GetContext(ctx, &thread, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &thread, nil
}

func (r *Repository) AddThreadMembers(ctx context.Context, threadID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	query := sq.Insert("user_threads").
		Columns("user_id", "thread_id", "last_message_read").
		Suffix("ON CONFLICT (user_id, thread_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, userID := range userIDs {
		query = query.Values(userID, threadID, false)
	}

	q, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, q, args...)
	return err
}

func (r *Repository) SetThreadLastMessage(ctx context.Context, threadID, messageID int64, sentAt time.Time) error {
	query, args, err := sq.Update("threads").
		Set("last_message_id", messageID).
		Set("last_message_sent", sentAt).
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) SetThreadRead(ctx context.Context, threadID, userID int64, read bool) error {
	query, args, err := sq.Update("user_threads").
		Set("last_message_read", read).
		Where(sq.And{
			sq.Eq{"thread_id": threadID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

// ResetThreadReadExcept marks the thread unread for every participant but
// one. A reply invalidates the read flag of everyone except the replier.
func (r *Repository) ResetThreadReadExcept(ctx context.Context, threadID, exceptUserID int64) error {
	query, args, err := sq.Update("user_threads").
		Set("last_message_read", false).
		Where(sq.And{
			sq.Eq{"thread_id": threadID},
			sq.NotEq{"user_id": exceptUserID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) GetThreadMessages(ctx context.Context, threadID int64) (*model.ThreadMessageList, error) {
	query, args, err := sq.Select(
		"m.id",
		"m.to_users",
		"m.from_user",
		"m.subject",
		"m.message",
		"m.owner",
		"m.created_at",
		"m.read_at",
		"m.is_archived",
		"m.is_deleted",
		"m.sender_id",
		"m.thread_id",
		`u.id AS "sender.id"`,
		`u.username AS "sender.username"`,
		`u.uuid AS "sender.uuid"`,
	).
		From("messages m").
		InnerJoin("users u ON m.sender_id = u.id").
		Where(sq.Eq{"m.thread_id": threadID}).
		OrderBy("m.id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.ThreadMessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return &messages, nil
}

func (r *Repository) GetThreadParticipants(ctx context.Context, threadID int64, excludeUsername string) (*model.UserList, error) {
	query, args, err := sq.Select("u.id", "u.username", "u.uuid").
		From("users u").
		InnerJoin("user_threads ut ON u.id = ut.user_id").
		Where(sq.And{
			sq.Eq{"ut.thread_id": threadID},
			sq.NotEq{"u.username": excludeUsername},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var users model.UserList
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, err
	}

	return &users, nil
}

func (r *Repository) ListThreads(ctx context.Context, username string) (*model.ThreadPreviewList, error) {
	var threads model.ThreadPreviewList
	err := r.Chk(ctx).SelectContext(ctx, &threads, listThreadsQuery, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %v", err)
	}

	return &threads, nil
}

func (r *Repository) ListThreadsForLogUser(ctx context.Context, username, logUsername string) (*model.ThreadPreviewList, error) {
	var threads model.ThreadPreviewList
	err := r.Chk(ctx).SelectContext(ctx, &threads, listThreadsForLogUserQuery, username, logUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to list log threads: %v", err)
	}

	return &threads, nil
}
