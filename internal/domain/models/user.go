package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`

	// PasswordHash is never serialized in API responses.
	PasswordHash string `json:"-"`
}

type BusOperator struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"licenseNumber"`
	ContactEmail  string    `json:"contactEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}
