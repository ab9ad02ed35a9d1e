package entity

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

type User struct {
	Base
	Username     string       `db:"username"`
	Email        string       `db:"email"`
	PasswordHash *string      `db:"password"` // nil for OAuth-provisioned accounts
	Phone        *string      `db:"phone"`
	Location     *string      `db:"location"`
	Role         UserRole     `db:"role"`
	Provider     AuthProvider `db:"provider"`
	IsActive     bool         `db:"is_active"`
}
