package entity

import "time"

// Admin is a back-office account. Admin membership is decided by presence
// in the admins store, matched on Username.
type Admin struct {
	ID        int64
	Email     string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
