package models

// Role represents a user's role in the system
type Role int

// Role constants
const (
	RoleStudent Role = 1
	RoleTeacher Role = 2
	RoleAdmin   Role = 3
)

// User represents a user account. The core only reads users; accounts
// and role assignment are managed by the identity service.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"` // 1=Student, 2=Teacher, 3=Admin
}
