package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone,omitempty"`
	Location  *string         `json:"location,omitempty"`
	Role      entity.UserRole `json:"role"`
	Provider  string          `json:"provider"`
	CreatedAt time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		Location:  user.Location,
		Role:      user.Role,
		Provider:  string(user.Provider),
		CreatedAt: user.CreatedAt,
	}
}
