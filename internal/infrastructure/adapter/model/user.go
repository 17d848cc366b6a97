package model

import (
	"time"
)

// User is the stored row for a user
type User struct {
	ID        uint64
	Name      string
	Email     string
	BalanceID uint64
	CreatedAt time.Time
}
