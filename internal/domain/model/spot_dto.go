package model

// CreateSpotDTO is the payload for creating a spot from raw coordinates.
type CreateSpotDTO struct {
	CityName    string  `json:"city_name" validate:"required,min=1,max=255"`
	CountryCode *string `json:"country_code" validate:"omitempty,len=2"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	IsFavorite  bool    `json:"is_favorite"`
	Notes       *string `json:"notes"`
}

// CreateSpotFromCityDTO is the payload for creating a spot by geocoding a
// city name.
type CreateSpotFromCityDTO struct {
	CityName    string  `json:"city_name" validate:"required,min=1,max=255"`
	CountryCode *string `json:"country_code" validate:"omitempty,len=2"`
	IsFavorite  bool    `json:"is_favorite"`
	Notes       *string `json:"notes"`
}

// UpdateSpotDTO is the patch payload for a spot. Nil fields are left
// untouched; coordinates are immutable after creation.
type UpdateSpotDTO struct {
	CityName    *string `json:"city_name" validate:"omitempty,min=1,max=255"`
	CountryCode *string `json:"country_code" validate:"omitempty,len=2"`
	IsFavorite  *bool   `json:"is_favorite"`
	Notes       *string `json:"notes"`
}
