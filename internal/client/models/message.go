package models

import (
	"fmt"
	"time"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ID prefixes encode where a message came from.
const (
	PrefixUser  = "user"
	PrefixBot   = "bot"
	PrefixError = "error"
)

// TimestampLayout renders the display time the way the widget does (pt-BR HH:MM).
const TimestampLayout = "15:04"

// Message is one chat bubble. Messages are never mutated once created; the
// JSON form is what the local cache stores.
type Message struct {
	ID        string `json:"id"`
	Sender    Sender `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewMessage stamps a message created at t with an id of the form
// "<prefix>-<unix millis>".
func NewMessage(prefix string, sender Sender, text string, t time.Time) Message {
	return Message{
		ID:        fmt.Sprintf("%s-%d", prefix, t.UnixMilli()),
		Sender:    sender,
		Text:      text,
		Timestamp: t.Format(TimestampLayout),
	}
}
