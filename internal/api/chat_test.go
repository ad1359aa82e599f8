package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"cofau/internal/api"
	"cofau/internal/domain"
)

func TestChatStream_Watch(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat/ws" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for i, text := range []string{"first", "second"} {
			msg := domain.ChatMessage{ID: string(rune('a' + i)), ChatID: "c1", From: "tastebud", Text: text}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		// Give the client a moment to read the close frame.
		time.Sleep(50 * time.Millisecond)
	}))
	defer srv.Close()

	stream := api.NewChatStream(srv.URL, func() string { return "tok-ws" })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []string
	err := stream.Watch(ctx, func(m domain.ChatMessage) {
		got = append(got, m.Text)
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if gotAuth != "Bearer tok-ws" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("messages = %v", got)
	}
}
