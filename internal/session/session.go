package session

import (
	"sync"

	"github.com/Rhushya/Kloudmate/internal/assistant"
)

// Transcript is the append-only record of a chat session. It belongs to
// the UI; the query pipeline never reads it (every turn is independent).
type Transcript struct {
	mu        sync.Mutex
	exchanges []assistant.Exchange
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append records one finished exchange.
func (t *Transcript) Append(exchange assistant.Exchange) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exchanges = append(t.exchanges, exchange)
}

// Len returns the number of recorded exchanges.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.exchanges)
}

// All returns a copy of the recorded exchanges in order.
func (t *Transcript) All() []assistant.Exchange {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]assistant.Exchange, len(t.exchanges))
	copy(out, t.exchanges)
	return out
}
