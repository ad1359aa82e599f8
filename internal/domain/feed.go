package domain

// Post is one feed entry: a review of a dish or restaurant.
type Post struct {
	ID         string      `json:"id"`
	Author     UserSummary `json:"author"`
	Restaurant string      `json:"restaurant,omitempty"`
	Location   string      `json:"location,omitempty"`
	Caption    string      `json:"caption,omitempty"`
	MediaURL   string      `json:"media_url,omitempty"`
	Rating     float64     `json:"rating,omitempty"`
	Likes      int         `json:"likes"`
	Comments   int         `json:"comments"`
	CreatedUTC int64       `json:"created_utc"`
}

// Story is a short-lived media post shown on the happening screen.
type Story struct {
	ID         string      `json:"id"`
	Author     UserSummary `json:"author"`
	MediaURL   string      `json:"media_url"`
	Caption    string      `json:"caption,omitempty"`
	PostedUTC  int64       `json:"posted_utc"`
	ExpiresUTC int64       `json:"expires_utc"`
}

// StoryUpload is the multipart form for POST /api/stories/upload.
// Caption length mirrors the backend's limit.
type StoryUpload struct {
	Caption  string `validate:"max=300"`
	Filename string `validate:"required"`
}

// Location is a place result from the search screen.
type Location struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}
