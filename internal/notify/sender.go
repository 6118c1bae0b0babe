package notify

import (
	"context"
	"log"
)

// Sender delivers one notification through a channel. Implementations are
// push (ntfy topic) and chat (Telegram).
type Sender interface {
	Name() string
	Send(ctx context.Context, c Content) error
}

// Fanout delivers to every configured channel. Delivery failures are
// logged, never propagated; the notifier must not affect engine state.
type Fanout struct {
	senders []Sender
}

func NewFanout(senders ...Sender) *Fanout {
	return &Fanout{senders: senders}
}

func (f *Fanout) Deliver(ctx context.Context, c Content) {
	if len(f.senders) == 0 {
		log.Printf("no notification channels configured, dropping %q", c.Title)
		return
	}
	for _, s := range f.senders {
		if err := s.Send(ctx, c); err != nil {
			log.Printf("[%s] send failed: %v", s.Name(), err)
			continue
		}
		log.Printf("[%s] sent %q", s.Name(), c.Title)
	}
}
