package request

// UpdateProfileRequest is a partial update, only non-nil fields are applied.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
}
