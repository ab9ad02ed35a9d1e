package entity

type Venue struct {
	Base
	Name        string  `db:"name"`
	Location    string  `db:"location"`
	Capacity    int     `db:"capacity"`
	PricePerDay int64   `db:"price_per_day"` // whole currency units per day
	Category    string  `db:"category"`
	ImageURL    *string `db:"image_url"`
	Description *string `db:"description"`
}
