package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// flakyStore fails profile writes on demand while delegating everything else.
type flakyStore struct {
	Store
	failWrites bool
}

func (f *flakyStore) UpsertProfile(ctx context.Context, p *Profile) (*Profile, error) {
	if f.failWrites {
		return nil, fmt.Errorf("upsert profile: %w", ErrUnavailable)
	}
	return f.Store.UpsertProfile(ctx, p)
}

func TestFallbackWriteThrough(t *testing.T) {
	inner := openTestStore(t)
	fb := NewFallback(inner)
	ctx := context.Background()

	if _, err := fb.UpsertProfile(ctx, &Profile{
		Name: "Ada", Title: "Engineer", Bio: "b", Email: "a@b.co",
	}); err != nil {
		t.Fatal(err)
	}
	if fb.Pending() {
		t.Fatal("successful write must not leave a pending buffer")
	}
	got, err := inner.GetProfile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Ada" {
		t.Fatalf("profile not durably written: %+v", got)
	}
}

func TestFallbackBuffersFailedWrite(t *testing.T) {
	inner := openTestStore(t)
	flaky := &flakyStore{Store: inner, failWrites: true}
	fb := NewFallback(flaky)
	ctx := context.Background()

	saved, err := fb.UpsertProfile(ctx, &Profile{
		Name: "Ada", Title: "Engineer", Bio: "b", Email: "a@b.co",
	})
	if err != nil {
		t.Fatalf("buffered write must succeed, got %v", err)
	}
	if saved.Name != "Ada" {
		t.Fatalf("saved = %+v", saved)
	}
	if !fb.Pending() {
		t.Fatal("expected a pending buffered profile")
	}

	// The admin sees their own unflushed edit.
	got, err := fb.GetProfile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Ada" {
		t.Fatalf("GetProfile = %+v", got)
	}

	// Nothing landed durably.
	durable, err := inner.GetProfile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if durable != nil {
		t.Fatalf("expected nothing durable, got %+v", durable)
	}

	// Once the store recovers, Flush drains the buffer.
	flaky.failWrites = false
	if err := fb.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if fb.Pending() {
		t.Fatal("expected buffer drained")
	}
	durable, err = inner.GetProfile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if durable == nil || durable.Name != "Ada" {
		t.Fatalf("flushed profile = %+v", durable)
	}
}

// brokenStore rejects profile writes with an error unrelated to connectivity.
type brokenStore struct {
	Store
}

func (b *brokenStore) UpsertProfile(ctx context.Context, p *Profile) (*Profile, error) {
	return nil, errors.New("insert profile: constraint failed")
}

func TestFallbackPropagatesQueryError(t *testing.T) {
	inner := openTestStore(t)
	fb := NewFallback(&brokenStore{Store: inner})
	ctx := context.Background()

	_, err := fb.UpsertProfile(ctx, &Profile{
		Name: "Ada", Title: "Engineer", Bio: "b", Email: "a@b.co",
	})
	if err == nil {
		t.Fatal("expected the query error back, got success")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("query error misreported as unavailable: %v", err)
	}
	if fb.Pending() {
		t.Fatal("rejected write must not be buffered")
	}

	// The broken edit must not mask the durable state.
	got, err := fb.GetProfile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected no profile, got %+v", got)
	}
}

func TestFallbackFlushNoop(t *testing.T) {
	fb := NewFallback(openTestStore(t))
	if err := fb.Flush(context.Background()); err != nil {
		t.Fatal(err)
	}
}
