package app

import "net/http"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string       // config directory, e.g. $HOME/.cofau
	BaseURL    string       // backend base URL, e.g. https://api.cofau.app
	Passphrase string       // protects the persisted session
	LogLevel   string       // DEBUG, INFO, WARN, ERROR
	HTTP       *http.Client // optional; defaults to http.DefaultClient
}
