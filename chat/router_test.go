package chat

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatIgnoredWhenUnauthenticated(t *testing.T) {
	e := NewEngine()
	_, witness := joinSession(t, e, "Bob", "")

	conn := &fakeConn{addr: "203.0.113.9:5000"}
	s := e.Connect(conn)
	s.Chat("hello")
	s.Image("data:image/png;base64,AAAA")

	assert.Empty(t, conn.events)
	assert.Empty(t, witness.events)
}

func TestChatTooLong(t *testing.T) {
	e := NewEngine()
	s, conn := joinSession(t, e, "Alice", "")
	_, witness := joinSession(t, e, "Bob", "")

	s.Chat(strings.Repeat("a", MaxMessageLength+1))

	msgs := conn.chatMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "⚠️ Message is too long!", msgs[0].HTML)
	assert.False(t, msgs[0].Quiet)
	assert.Empty(t, witness.events, "oversized messages never reach the room")
}

func TestChatAtTheLimitIsDelivered(t *testing.T) {
	e := NewEngine()
	s, conn := joinSession(t, e, "Alice", "")

	s.Chat(strings.Repeat("a", MaxMessageLength))

	msgs := conn.chatMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "<strong>Alice</strong>: "+strings.Repeat("a", MaxMessageLength), msgs[0].HTML)
}

func TestChatEmpty(t *testing.T) {
	e := NewEngine()
	s, conn := joinSession(t, e, "Alice", "")
	_, witness := joinSession(t, e, "Bob", "")

	s.Chat("   \t  ")

	msgs := conn.chatMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "⚠️ Empty messages won't be submitted!", msgs[0].HTML)
	assert.Empty(t, witness.events)
}

func TestChatBroadcastsToWholeRoom(t *testing.T) {
	e := NewEngine()
	s, connA := joinSession(t, e, "Alice", "")
	_, connB := joinSession(t, e, "Bob", "")

	s.Chat("hello")

	want := ChatMessage{HTML: "<strong>Alice</strong>: hello", Quiet: false}
	for _, conn := range []*fakeConn{connA, connB} {
		msgs := conn.chatMessages()
		require.Len(t, msgs, 1)
		assert.Equal(t, want, msgs[0])
	}
}

func TestChatScopedToRoom(t *testing.T) {
	e := NewEngine()
	s, _ := joinSession(t, e, "Alice", "den")
	_, elsewhere := joinSession(t, e, "Bob", "other")

	s.Chat("hello")
	assert.Empty(t, elsewhere.events)
}

func TestImageInvalidPayload(t *testing.T) {
	e := NewEngine()
	s, conn := joinSession(t, e, "Alice", "")
	_, witness := joinSession(t, e, "Bob", "")

	for _, payload := range []string{
		"not a data uri",
		"data:;base64,AAAA",
		"data:image/png;base64,@@not-base64@@",
	} {
		s.Image(payload)
	}

	msgs := conn.chatMessages()
	require.Len(t, msgs, 3)
	for _, m := range msgs {
		assert.Equal(t, "⚠️ Invalid image!", m.HTML)
	}
	assert.Empty(t, witness.events, "invalid images never reach the room")
}

func TestImageValidPayload(t *testing.T) {
	e := NewEngine()
	s, _ := joinSession(t, e, "Alice", "")
	_, witness := joinSession(t, e, "Bob", "")

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})
	s.Image(payload)

	msgs := witness.chatMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, `<strong>Alice</strong>: <p><img onload="scrollDown()" class="chatImage" src="`+payload+`" alt="[Invalid Image]" /></p>`, msgs[0].HTML)
	assert.False(t, msgs[0].Quiet)
}

func TestValidImagePayload(t *testing.T) {
	small := base64.StdEncoding.EncodeToString([]byte("img"))
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"png data uri", "data:image/png;base64," + small, true},
		{"jpeg data uri", "data:image/jpeg;base64," + small, true},
		{"missing mime", "data:;base64," + small, false},
		{"not base64 encoding", "data:image/png," + small, false},
		{"bad base64", "data:image/png;base64,!!!", false},
		{"no scheme", "image/png;base64," + small, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validImagePayload(tt.payload))
		})
	}
}
