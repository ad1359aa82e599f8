package api

import (
	"context"

	"cofau/internal/domain"
)

func (c *Client) Feed(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.getJSON(ctx, "/api/feed", &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].MediaURL = NormalizeMediaURL(c.Base, posts[i].MediaURL)
		posts[i].Author.AvatarURL = NormalizeMediaURL(c.Base, posts[i].Author.AvatarURL)
	}
	return posts, nil
}

func (c *Client) Happening(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	if err := c.getJSON(ctx, "/api/happening", &stories); err != nil {
		return nil, err
	}
	for i := range stories {
		stories[i].MediaURL = NormalizeMediaURL(c.Base, stories[i].MediaURL)
	}
	return stories, nil
}

func (c *Client) Profile(ctx context.Context, username string) (domain.Profile, error) {
	var p domain.Profile
	if err := c.getJSON(ctx, "/api/profile/"+pathEscape(username), &p); err != nil {
		return domain.Profile{}, err
	}
	p.User.AvatarURL = NormalizeMediaURL(c.Base, p.User.AvatarURL)
	for i := range p.Posts {
		p.Posts[i].MediaURL = NormalizeMediaURL(c.Base, p.Posts[i].MediaURL)
	}
	return p, nil
}
