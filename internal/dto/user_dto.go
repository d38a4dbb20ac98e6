package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"linkboard-api/internal/domain"
)

// NullableString distinguishes "field absent" from "field explicitly
// null" in a JSON body. Absent leaves the stored value untouched;
// explicit null clears it.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateProfileRequest represents the request to update the caller's profile.
// Only name and image are writable; provider-managed fields are not.
type UpdateProfileRequest struct {
	Name  string         `json:"name"`
	Image NullableString `json:"image"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Image     *string         `json:"image,omitempty"`
	UserType  domain.UserType `json:"userType"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AuthResponse carries the session token issued after login or a
// profile update (the token embeds the refreshed claims).
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AdminCheckResponse is the admin gate result
type AdminCheckResponse struct {
	IsAdmin bool         `json:"isAdmin"`
	User    UserResponse `json:"user"`
}
