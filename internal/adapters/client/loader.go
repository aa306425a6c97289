package client

import (
	"context"
	"sync"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports"
)

// State is the observable phase of a catalog load
type State int

const (
	StatePending State = iota
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Snapshot is a consistent view of a Loader
type Snapshot struct {
	State  State
	Assets []domain.Asset
	Err    error
}

// Loader tracks one catalog fetch at a time. A failure is terminal until
// Load is called again; there is no automatic retry and no partial catalog.
type Loader struct {
	source ports.CatalogSource

	mu     sync.RWMutex
	state  State
	assets []domain.Asset
	err    error
}

func NewLoader(source ports.CatalogSource) *Loader {
	return &Loader{source: source, state: StatePending}
}

// Load fetches the catalog and records the outcome
func (l *Loader) Load(ctx context.Context) Snapshot {
	l.mu.Lock()
	l.state = StatePending
	l.err = nil
	l.mu.Unlock()

	assets, err := l.source.Catalog(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateFailure
		l.assets = nil
		l.err = err
	} else {
		l.state = StateSuccess
		l.assets = assets
	}
	return Snapshot{State: l.state, Assets: l.assets, Err: l.err}
}

// Snapshot returns the current state without fetching
func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot{State: l.state, Assets: l.assets, Err: l.err}
}
