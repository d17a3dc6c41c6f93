package model

import (
	"time"
)

// User is an admin account for the management portal.
type User struct {
	ID           int64     `json:"id"         db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	Name         string    `json:"name"       db:"name"          gorm:"column:name;not null"`
	Email        string    `json:"email"      db:"email"         gorm:"column:email;not null;unique"`
	PasswordHash string    `json:"-"          db:"password_hash" gorm:"column:password_hash;not null"`
	Role         string    `json:"role"       db:"role"          gorm:"column:role;not null;default:admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"    gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Principal is the authenticated identity resolved from a session token. The
// web boundary resolves it; ledger services receive it through the request
// context and trust the caller already validated it.
type Principal struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
