package chat

import "sort"

// registry tracks which sessions belong to which room, with a reverse map
// so a session can be looked up without scanning. Rooms exist exactly as
// long as they have members: the first join creates the entry, removing
// the last member erases it. All access is serialized by the engine mutex.
type registry struct {
	rooms    map[string]map[*Session]struct{}
	sessions map[*Session]string
}

func newRegistry() *registry {
	return &registry{
		rooms:    make(map[string]map[*Session]struct{}),
		sessions: make(map[*Session]string),
	}
}

// join adds s to roomID. A session belongs to exactly one room at a time,
// so any existing membership is dropped first.
func (r *registry) join(s *Session, roomID string) {
	if _, ok := r.sessions[s]; ok {
		r.leave(s)
	}
	room, ok := r.rooms[roomID]
	if !ok {
		room = make(map[*Session]struct{})
		r.rooms[roomID] = room
	}
	room[s] = struct{}{}
	r.sessions[s] = roomID
}

// leave removes s from its current room, if any, erasing the room once it
// has no members left.
func (r *registry) leave(s *Session) {
	roomID, ok := r.sessions[s]
	if !ok {
		return
	}
	delete(r.sessions, s)
	if room, ok := r.rooms[roomID]; ok {
		delete(room, s)
		if len(room) == 0 {
			delete(r.rooms, roomID)
		}
	}
}

func (r *registry) roomOf(s *Session) (string, bool) {
	roomID, ok := r.sessions[s]
	return roomID, ok
}

func (r *registry) members(roomID string) []*Session {
	room := r.rooms[roomID]
	out := make([]*Session, 0, len(room))
	for s := range room {
		out = append(out, s)
	}
	return out
}

func (r *registry) roomNames() []string {
	names := make([]string, 0, len(r.rooms))
	for name := range r.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
