package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/messenger-service/internal/model"
)

// GetOrCreateUser resolves a user by username, creating the row on first
// reference. A concurrent insert races harmlessly: the conflict clause
// turns the losing insert into a fetch of the existing row.
func (r *Repository) GetOrCreateUser(ctx context.Context, username string) (*model.User, error) {
	query, args, err := sq.Insert("users").
		Columns("username").
		Values(username).
		Suffix("ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username RETURNING id, username, uuid").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %v", err)
	}

	return &user, nil
}

func (r *Repository) SetUserUUID(ctx context.Context, username, userUUID string) error {
	query, args, err := sq.Update("users").
		Set("uuid", userUUID).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
