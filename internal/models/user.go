package models

import "time"

// UserType determines what a user may do in the API.
type UserType string

// Supported user types
const (
	UserCustomer UserType = "customer"
	UserManager  UserType = "manager"
	UserAdmin    UserType = "admin"
)

// User is an API user. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	CPF           string    `json:"cpf"`
	UserType      UserType  `json:"user_type"`
	EmployeeCode  string    `json:"employee_code,omitempty"`
	SuperPassword string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateUserInput is the payload for creating a user.
type CreateUserInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	CPF           string   `json:"cpf"`
	UserType      UserType `json:"user_type"`
	EmployeeCode  string   `json:"employee_code"`
	SuperPassword string   `json:"super_password"`
}

// UpdateUserInput is the payload for updating a user. Empty fields keep
// their current value.
type UpdateUserInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	CPF           string   `json:"cpf"`
	UserType      UserType `json:"user_type"`
	EmployeeCode  string   `json:"employee_code"`
	SuperPassword string   `json:"super_password"`
}
