package app

import (
	"net/http"

	"cofau/internal/api"
	"cofau/internal/domain"
	"cofau/internal/logging"
	sessionsvc "cofau/internal/services/session"
)

// Wire bundles the store, services, and backend clients for the CLI.
type Wire struct {
	Sessions *sessionsvc.Service
	API      domain.APIClient
	Chat     domain.ChatStreamer
	Log      *logging.Logger
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, store domain.SessionStore) (*Wire, error) {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := logging.New(cfg.Home, cfg.LogLevel)

	// The session service and API client reference each other: the client
	// pulls the bearer token from the service, the service logs in through
	// the client. Build the client first with a late-bound token source.
	var sessions *sessionsvc.Service
	client := api.NewClient(cfg.BaseURL, httpClient, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	})
	sessions = sessionsvc.New(store, client, cfg.Passphrase)

	stream := api.NewChatStream(cfg.BaseURL, sessions.Token)

	return &Wire{
		Sessions: sessions,
		API:      client,
		Chat:     stream,
		Log:      logger,
		HTTP:     httpClient,
	}, nil
}
