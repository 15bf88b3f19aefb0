// Package entity contains the core business objects of vendo.
package entity

import "time"

// User is a storefront customer account.
// The password hash lives in Credential and never travels with a User.
type User struct {
	ID        int64
	Email     string
	Username  string
	FullName  string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Email    *string
	Username *string
	FullName *string
	Phone    *string
	Address  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Username == nil && p.FullName == nil && p.Phone == nil && p.Address == nil
}

// Apply copies the set fields of p onto u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}
