package api

import (
	"context"
	"fmt"

	"cofau/internal/domain"
)

func (c *Client) Leaderboard(ctx context.Context, kind domain.LeaderboardKind) ([]domain.Contributor, error) {
	switch kind {
	case domain.LeaderboardUsers, domain.LeaderboardRestaurants:
	default:
		return nil, fmt.Errorf("unknown leaderboard kind %q", kind)
	}
	var rows []domain.Contributor
	if err := c.getJSON(ctx, "/api/leaderboard/top-contributors/"+string(kind), &rows); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AvatarURL = NormalizeMediaURL(c.Base, rows[i].AvatarURL)
	}
	return rows, nil
}
