package model

import "github.com/google/uuid"

type UserList []User

type User struct {
	ID       int64      `db:"id" json:"id"`
	Username string     `db:"username" json:"username"`
	UUID     *uuid.UUID `db:"uuid" json:"uuid,omitempty"`
}
