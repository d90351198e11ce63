package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Bio          string    `db:"bio"`
	FireTarget   int64     `db:"fire_target"`
	Premium      bool      `db:"premium"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
