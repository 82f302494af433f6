package notify

import (
	"context"
	"sync"
	"time"
)

// EventKind labels a feed entry.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventSucceeded EventKind = "succeeded"
	EventFailed    EventKind = "failed"
)

// Event is one entry in the notification feed.
type Event struct {
	Kind     EventKind `json:"kind"`
	Artifact string    `json:"artifact"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// FeedProvider retains the most recent export outcomes in memory so the UI
// shell can poll and surface them as toasts. Oldest entries are dropped first.
type FeedProvider struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

func NewFeed(limit int) *FeedProvider {
	if limit <= 0 {
		limit = 20
	}
	return &FeedProvider{limit: limit}
}

func (p *FeedProvider) ExportStarted(ctx context.Context, artifact string) {
	p.push(Event{Kind: EventStarted, Artifact: artifact, Message: "Generating PDF..."})
}

func (p *FeedProvider) ExportSucceeded(ctx context.Context, artifact string) {
	p.push(Event{Kind: EventSucceeded, Artifact: artifact, Message: "PDF " + artifact + " has been saved"})
}

func (p *FeedProvider) ExportFailed(ctx context.Context, artifact string) {
	p.push(Event{Kind: EventFailed, Artifact: artifact, Message: "There was an error generating the PDF. Please try again."})
}

// Recent returns the retained events, newest last.
func (p *FeedProvider) Recent() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

func (p *FeedProvider) push(event Event) {
	event.At = time.Now().UTC()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	if len(p.events) > p.limit {
		p.events = p.events[len(p.events)-p.limit:]
	}
}
