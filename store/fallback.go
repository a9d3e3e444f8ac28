package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Fallback wraps a durable Store and keeps the most recent profile edit in
// memory when the database is unreachable, so an admin's edit is not silently
// discarded mid-session. The buffered profile is explicitly not durable: it
// is lost on process restart. A background loop retries flushing it until it
// lands. All other entities pass through untouched.
type Fallback struct {
	Store

	mu      sync.Mutex
	pending *Profile
}

// NewFallback wraps s with the profile write-ahead buffer.
func NewFallback(s Store) *Fallback {
	return &Fallback{Store: s}
}

// Start launches the background flush loop. It stops when ctx is cancelled.
func (f *Fallback) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := f.Flush(ctx); err != nil {
					log.Printf("profile buffer flush failed, will retry: %v", err)
				}
			}
		}
	}()
}

// GetProfile returns the buffered profile when one is waiting to be flushed,
// so the admin sees the edit they just made.
func (f *Fallback) GetProfile(ctx context.Context) (*Profile, error) {
	f.mu.Lock()
	pending := f.pending
	f.mu.Unlock()
	if pending != nil {
		copied := *pending
		return &copied, nil
	}
	return f.Store.GetProfile(ctx)
}

// UpsertProfile writes through to the durable store. If the store is
// unreachable the profile is buffered instead and the call reports success;
// the flush loop will retry in the background. Any other failure, such as a
// rejected statement, is returned to the caller unbuffered.
func (f *Fallback) UpsertProfile(ctx context.Context, p *Profile) (*Profile, error) {
	saved, err := f.Store.UpsertProfile(ctx, p)
	if err == nil {
		f.mu.Lock()
		f.pending = nil
		f.mu.Unlock()
		return saved, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		return nil, err
	}
	log.Printf("store unreachable, buffering profile edit in memory: %v", err)
	copied := *p
	copied.UpdatedAt = time.Now().UTC()
	f.mu.Lock()
	f.pending = &copied
	f.mu.Unlock()
	result := copied
	return &result, nil
}

// Flush attempts to persist the buffered profile, if any.
func (f *Fallback) Flush(ctx context.Context) error {
	f.mu.Lock()
	pending := f.pending
	f.mu.Unlock()
	if pending == nil {
		return nil
	}
	if _, err := f.Store.UpsertProfile(ctx, pending); err != nil {
		return err
	}
	f.mu.Lock()
	// A newer edit may have been buffered while flushing; keep it.
	if f.pending == pending {
		f.pending = nil
	}
	f.mu.Unlock()
	log.Println("buffered profile edit flushed to store")
	return nil
}

// Pending reports whether a profile edit is waiting to be flushed.
func (f *Fallback) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending != nil
}
