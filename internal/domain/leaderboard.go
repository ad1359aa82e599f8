package domain

// LeaderboardKind selects which top-contributors board to fetch.
type LeaderboardKind string

const (
	LeaderboardUsers       LeaderboardKind = "users"
	LeaderboardRestaurants LeaderboardKind = "restaurants"
)

// Contributor is one leaderboard row.
type Contributor struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Points      int    `json:"points"`
}
