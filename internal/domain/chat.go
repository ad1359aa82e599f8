package domain

// ChatSummary is one row of the chat list screen.
type ChatSummary struct {
	ID             string `json:"id"`
	PeerUsername   string `json:"peer_username"`
	PeerAvatarURL  string `json:"peer_avatar_url,omitempty"`
	LastMessage    string `json:"last_message,omitempty"`
	LastMessageUTC int64  `json:"last_message_utc"`
	Unread         int    `json:"unread"`
}

// ChatMessage is a single message on the live chat stream.
type ChatMessage struct {
	ID      string `json:"id"`
	ChatID  string `json:"chat_id"`
	From    string `json:"from"`
	Text    string `json:"text"`
	SentUTC int64  `json:"sent_utc"`
}
