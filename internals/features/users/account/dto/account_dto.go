package dto

import (
	"strings"
	"time"

	accountModel "pteguide_backend/internals/features/users/account/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// LoginRequest serves both login and registration; action picks the path.
// Strict "digits only" is checked again in the service.
type LoginRequest struct {
	Name   string `json:"name" form:"name" validate:"required,max=50"`
	Pin    string `json:"pin" form:"pin" validate:"required,min=4,max=6"`
	Action string `json:"action" form:"action" validate:"required,oneof=login register"`
}

func (r *LoginRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Pin = strings.TrimSpace(r.Pin)
	r.Action = strings.TrimSpace(strings.ToLower(r.Action))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

func ToUserResponse(m *accountModel.SimpleUserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		LastLogin: m.LastLogin,
	}
}
