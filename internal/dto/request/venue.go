package request

type VenueRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Location    string  `json:"location" validate:"required,min=2,max=200"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
	PricePerDay int64   `json:"price_per_day" validate:"required,min=1"`
	Category    string  `json:"category" validate:"required,min=2,max=50"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty"`
}

type VenueUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=2,max=200"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	PricePerDay *int64  `json:"price_per_day,omitempty" validate:"omitempty,min=1"`
	Category    *string `json:"category,omitempty" validate:"omitempty,min=2,max=50"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty"`
}
