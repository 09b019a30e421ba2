package entity

import "github.com/google/uuid"

// db model, written by the auth collaborator and read here for projections
type User struct {
	Id    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Email string    `json:"email" db:"email"`
	Role  string    `json:"role" db:"role"`
}

// controller model
type UserOutputModel struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
