package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"cofau/internal/domain"
)

const listenAddr = ":8790"

type memoryStore struct {
	mu      sync.RWMutex
	tokens  map[string]domain.User
	stories []domain.Story
}

func newMemoryStore() *memoryStore {
	return &memoryStore{tokens: make(map[string]domain.User)}
}

func (ms *memoryStore) userForToken(r *http.Request) (domain.User, bool) {
	raw := r.Header.Get("Authorization")
	if !strings.HasPrefix(raw, "Bearer ") {
		return domain.User{}, false
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	u, ok := ms.tokens[strings.TrimPrefix(raw, "Bearer ")]
	return u, ok
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	ms := newMemoryStore()
	now := time.Now().Unix()

	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		defer req.Body.Close()
		var creds domain.Credentials
		if err := json.NewDecoder(req.Body).Decode(&creds); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if creds.Email == "" || creds.Password == "" {
			http.Error(w, "missing credentials", 401)
			return
		}
		user := domain.User{
			ID:          uuid.NewString(),
			Email:       creds.Email,
			Username:    strings.SplitN(creds.Email, "@", 2)[0],
			AccountType: domain.AccountUser,
		}
		token := uuid.NewString()
		ms.mu.Lock()
		ms.tokens[token] = user
		ms.mu.Unlock()
		log.Println("login", user.Username)
		writeJSON(w, domain.LoginResult{Token: token, User: user})
	}).Methods("POST")

	// Everything below requires a bearer token.
	authed := func(h func(http.ResponseWriter, *http.Request, domain.User)) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			u, ok := ms.userForToken(req)
			if !ok {
				http.Error(w, "unauthorized", 401)
				return
			}
			h(w, req, u)
		}
	}

	r.HandleFunc("/api/auth/me", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		writeJSON(w, map[string]domain.User{"user": u})
	})).Methods("GET")

	r.HandleFunc("/api/feed", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		writeJSON(w, []domain.Post{
			{
				ID:         "p1",
				Author:     domain.UserSummary{ID: "u2", Username: "tastebud"},
				Restaurant: "Nonna's Table",
				Caption:    "carbonara worth the queue",
				MediaURL:   "/media/p1.jpg",
				Rating:     4.5,
				Likes:      12,
				Comments:   3,
				CreatedUTC: now - 3600,
			},
			{
				ID:         "p2",
				Author:     domain.UserSummary{ID: "u3", Username: "brunchlord"},
				Restaurant: "Cafe Delta",
				Caption:    "shakshuka season",
				MediaURL:   "\\media\\p2.jpg",
				Rating:     4.0,
				Likes:      5,
				Comments:   1,
				CreatedUTC: now - 7200,
			},
		})
	})).Methods("GET")

	r.HandleFunc("/api/happening", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		ms.mu.RLock()
		stories := append([]domain.Story{
			{
				ID:         "s1",
				Author:     domain.UserSummary{ID: "u2", Username: "tastebud"},
				MediaURL:   "/media/s1.mp4",
				Caption:    "live from the pass",
				PostedUTC:  now - 600,
				ExpiresUTC: now + 85800,
			},
		}, ms.stories...)
		ms.mu.RUnlock()
		writeJSON(w, stories)
	})).Methods("GET")

	r.HandleFunc("/api/chat/list", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		writeJSON(w, []domain.ChatSummary{
			{ID: "c1", PeerUsername: "tastebud", LastMessage: "that place again?", LastMessageUTC: now - 120, Unread: 2},
			{ID: "c2", PeerUsername: "brunchlord", LastMessage: "table for 4 booked", LastMessageUTC: now - 4000},
		})
	})).Methods("GET")

	r.HandleFunc("/api/leaderboard/top-contributors/{kind}", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		kind := mux.Vars(req)["kind"]
		if kind != "users" && kind != "restaurants" {
			http.Error(w, "unknown leaderboard", 404)
			return
		}
		writeJSON(w, []domain.Contributor{
			{Rank: 1, Username: "tastebud", Points: 420},
			{Rank: 2, Username: "brunchlord", Points: 330},
			{Rank: 3, Username: u.Username, Points: 10},
		})
	})).Methods("GET")

	r.HandleFunc("/api/search/{scope}", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		q := strings.ToLower(req.URL.Query().Get("q"))
		switch mux.Vars(req)["scope"] {
		case "users":
			all := []domain.UserSummary{{ID: "u2", Username: "tastebud"}, {ID: "u3", Username: "brunchlord"}}
			var out []domain.UserSummary
			for _, su := range all {
				if strings.Contains(su.Username, q) {
					out = append(out, su)
				}
			}
			writeJSON(w, out)
		case "posts":
			writeJSON(w, []domain.Post{})
		case "locations":
			writeJSON(w, []domain.Location{{ID: "l1", Name: "Nonna's Table", City: "Sydney"}})
		default:
			http.Error(w, "unknown scope", 404)
		}
	})).Methods("GET")

	r.HandleFunc("/api/stories/upload", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		if err := req.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		f, hdr, err := req.FormFile("media")
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		defer f.Close()
		n, _ := io.Copy(io.Discard, f)
		story := domain.Story{
			ID:         uuid.NewString(),
			Author:     domain.UserSummary{ID: u.ID, Username: u.Username},
			MediaURL:   "/media/" + hdr.Filename,
			Caption:    req.FormValue("caption"),
			PostedUTC:  time.Now().Unix(),
			ExpiresUTC: time.Now().Add(24 * time.Hour).Unix(),
		}
		ms.mu.Lock()
		ms.stories = append(ms.stories, story)
		ms.mu.Unlock()
		log.Printf("story upload from %s (%d bytes)", u.Username, n)
		writeJSON(w, story)
	})).Methods("POST")

	r.HandleFunc("/api/profile/{username}", authed(func(w http.ResponseWriter, req *http.Request, u domain.User) {
		username := mux.Vars(req)["username"]
		writeJSON(w, domain.Profile{
			User:      domain.User{ID: "u9", Username: username, Email: username + "@cofau.app"},
			Bio:       "eats, rates, repeats",
			Followers: 42,
			Following: 17,
			PostCount: 3,
		})
	})).Methods("GET")

	upgrader := websocket.Upgrader{}
	r.HandleFunc("/api/chat/ws", func(w http.ResponseWriter, req *http.Request) {
		if _, ok := ms.userForToken(req); !ok {
			http.Error(w, "unauthorized", 401)
			return
		}
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// Drip a canned message every few seconds until the client hangs up.
		ticker := time.NewTicker(3 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			msg := domain.ChatMessage{
				ID:      uuid.NewString(),
				ChatID:  "c1",
				From:    "tastebud",
				Text:    "still thinking about that carbonara",
				SentUTC: time.Now().Unix(),
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	})

	log.Println("cofaudev listening on", listenAddr)
	log.Fatal(http.ListenAndServe(listenAddr, r))
}
