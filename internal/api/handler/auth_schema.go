package handler

import "github.com/legalconnect/platform-api/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=client lawyer"`
}

type signupRequest struct {
	Name       string `json:"name"     validate:"required"`
	Email      string `json:"email"    validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role"     validate:"required,oneof=client lawyer"`
	Phone      string `json:"phone,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
	Experience int    `json:"experience,omitempty"`
	Fees       string `json:"fees,omitempty"`
}

type updateProfileRequest struct {
	Name       *string  `json:"name,omitempty"`
	Photo      *string  `json:"photo,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Address    *string  `json:"address,omitempty"`
	Specialty  *string  `json:"specialty,omitempty"`
	Experience *int     `json:"experience,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Fees       *string  `json:"fees,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

type messageResponse struct {
	Message string `json:"message"`
}
