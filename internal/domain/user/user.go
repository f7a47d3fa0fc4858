// Package user holds a read-only view of accounts managed by the identity
// service. This backend never creates or mutates users; it only resolves
// names for display and validates roles carried in bearer tokens.
package user

import "time"

type User struct {
	id        uint
	name      string
	email     string
	role      string
	createdAt time.Time
}

func ReconstructUser(id uint, name, email, role string, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		role:      role,
		createdAt: createdAt,
	}
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() string {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
