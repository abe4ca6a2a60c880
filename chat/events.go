package chat

// Event is one outbound message pushed to a connected client. The set of
// events is closed; the transport layer maps each one onto its wire
// envelope by name.
type Event interface {
	EventName() string
}

// Authenticated reports the result of a join exchange.
type Authenticated struct {
	OK       bool
	Username string
}

func (Authenticated) EventName() string { return "authenticated" }

// RoomChange carries the authoritative room id after a join or switch.
type RoomChange struct {
	RoomID string
}

func (RoomChange) EventName() string { return "roomChange" }

// ChatMessage is a rendered chat line. Quiet messages must not trigger a
// client-side notification.
type ChatMessage struct {
	HTML  string
	Quiet bool
}

func (ChatMessage) EventName() string { return "chat_message" }

// Refresh instructs the client to reload its page.
type Refresh struct{}

func (Refresh) EventName() string { return "refresh" }
