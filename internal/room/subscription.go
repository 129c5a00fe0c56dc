package room

import "github.com/robalobadob/crossclues/internal/game"

// Subscription delivers the latest view for one seat (or a spectator when
// Seat is nil). Views that are not read in time are replaced by newer ones,
// so a slow reader always catches up to the current state.
type Subscription struct {
	Seat *game.PlayerID
	C    <-chan game.View

	ch chan game.View
}

// Subscribe registers a subscriber and queues its current view.
func (r *Room) Subscribe(seat *game.PlayerID) *Subscription {
	ch := make(chan game.View, 1)
	s := &Subscription{C: ch, ch: ch}
	if seat != nil {
		p := *seat
		s.Seat = &p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[s] = struct{}{}
	s.offer(r.viewLocked(s.Seat))
	return s
}

// Unsubscribe removes s and closes its channel. Safe to call twice.
func (r *Room) Unsubscribe(s *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[s]; !ok {
		return
	}
	delete(r.subs, s)
	close(s.ch)
}

// Subscribers counts live subscriptions.
func (r *Room) Subscribers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

func (r *Room) viewLocked(seat *game.PlayerID) game.View {
	if seat == nil {
		return r.g.SpectatorView()
	}
	return r.g.View(*seat)
}

// broadcastLocked must run under the write lock.
func (r *Room) broadcastLocked() {
	for s := range r.subs {
		s.offer(r.viewLocked(s.Seat))
	}
}

// offer replaces any unread view with v. Only called under the room's write
// lock, so there is a single sender.
func (s *Subscription) offer(v game.View) {
	select {
	case <-s.ch:
	default:
	}
	s.ch <- v
}
