package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"cofau/internal/domain"
)

func (c *Client) ChatList(ctx context.Context) ([]domain.ChatSummary, error) {
	var chats []domain.ChatSummary
	if err := c.getJSON(ctx, "/api/chat/list", &chats); err != nil {
		return nil, err
	}
	for i := range chats {
		chats[i].PeerAvatarURL = NormalizeMediaURL(c.Base, chats[i].PeerAvatarURL)
	}
	return chats, nil
}

// ChatStream watches the live chat feed over a websocket.
type ChatStream struct {
	Base   string
	Token  func() string
	Dialer *websocket.Dialer
}

func NewChatStream(base string, token func() string) *ChatStream {
	return &ChatStream{Base: base, Token: token, Dialer: websocket.DefaultDialer}
}

// Watch connects to /api/chat/ws and invokes onMessage for every incoming
// chat message until ctx is cancelled or the connection drops.
func (s *ChatStream) Watch(ctx context.Context, onMessage func(domain.ChatMessage)) error {
	header := http.Header{}
	if s.Token != nil {
		if tok := s.Token(); tok != "" {
			header.Set("Authorization", "Bearer "+tok)
		}
	}

	conn, resp, err := s.Dialer.DialContext(ctx, wsURL(s.Base)+"/api/chat/ws", header)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Unblock ReadJSON when the caller gives up.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var msg domain.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		onMessage(msg)
	}
}

// wsURL rewrites an http(s) base into the matching ws(s) scheme.
func wsURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}

// Compile-time assertion that ChatStream implements domain.ChatStreamer.
var _ domain.ChatStreamer = (*ChatStream)(nil)
