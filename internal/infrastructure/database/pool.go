package database

import (
	"context"
	"sync"
)

// DialFunc opens the underlying connection. Swappable in tests.
type DialFunc func(cfg Config) (*Database, error)

// Pool is the process-wide, lazily-initialized store handle. The
// connection is opened once on first use and reused by every caller;
// concurrent first callers collapse onto a single in-flight dial and all
// observe its result. A failed dial clears the cached state so the next
// call retries cleanly.
type Pool struct {
	cfg  Config
	dial DialFunc

	mu       sync.Mutex
	db       *Database
	inflight *attempt
}

type attempt struct {
	done chan struct{}
	db   *Database
	err  error
}

func NewPool(cfg Config) *Pool {
	return &Pool{cfg: cfg, dial: Connect}
}

func (p *Pool) Get(ctx context.Context) (*Database, error) {
	p.mu.Lock()
	if p.db != nil {
		db := p.db
		p.mu.Unlock()

		return db, nil
	}

	att := p.inflight
	if att == nil {
		att = &attempt{done: make(chan struct{})}
		p.inflight = att
		go p.run(att)
	}
	p.mu.Unlock()

	select {
	case <-att.done:
		return att.db, att.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pool) run(att *attempt) {
	db, err := p.dial(p.cfg)

	att.db, att.err = db, err

	p.mu.Lock()
	if err == nil {
		p.db = db
	}
	p.inflight = nil
	p.mu.Unlock()

	close(att.done)
}

// Stop disconnects the cached handle, if any.
func (p *Pool) Stop() error {
	p.mu.Lock()
	db := p.db
	p.db = nil
	p.mu.Unlock()

	if db == nil {
		return nil
	}

	return db.Stop()
}
