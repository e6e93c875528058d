package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateEventInput struct {
	Title       string    `json:"title"       validate:"required,max=255"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date"        validate:"required"`
	Location    string    `json:"location"    validate:"required,max=255"`
	ImageURL    *string   `json:"image_url"   validate:"omitempty,url"`
}
