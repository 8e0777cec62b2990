// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a shop account. Customers and administrators share the same table
// and are distinguished by IsAdmin.
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	IsActive     bool
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles derives the roles carried in access tokens.
func (u *User) Roles() Roles {
	if u.IsAdmin {
		return Roles{RoleCustomer, RoleAdmin}
	}

	return Roles{RoleCustomer}
}
