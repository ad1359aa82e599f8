package api

import (
	"context"
	"net/url"

	"cofau/internal/domain"
)

func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	var users []domain.UserSummary
	if err := c.getJSON(ctx, searchPath("users", query), &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].AvatarURL = NormalizeMediaURL(c.Base, users[i].AvatarURL)
	}
	return users, nil
}

func (c *Client) SearchPosts(ctx context.Context, query string) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.getJSON(ctx, searchPath("posts", query), &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].MediaURL = NormalizeMediaURL(c.Base, posts[i].MediaURL)
	}
	return posts, nil
}

func (c *Client) SearchLocations(ctx context.Context, query string) ([]domain.Location, error) {
	var locs []domain.Location
	if err := c.getJSON(ctx, searchPath("locations", query), &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

func searchPath(scope, query string) string {
	return "/api/search/" + scope + "?q=" + url.QueryEscape(query)
}

func pathEscape(s string) string { return url.PathEscape(s) }
