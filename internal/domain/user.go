package domain

// User is the backend's account record as returned by auth endpoints.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name,omitempty"`
	AvatarURL   string      `json:"avatar_url,omitempty"`
	AccountType AccountType `json:"account_type,omitempty"`
}

// UserSummary is the compact shape used by search results and post authors.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Profile is a user's public page: the account plus counters and recent posts.
type Profile struct {
	User      User   `json:"user"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	PostCount int    `json:"post_count"`
	Posts     []Post `json:"posts,omitempty"`
}
