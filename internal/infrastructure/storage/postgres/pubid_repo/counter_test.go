package pubid_repo

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"arremate/internal/core/pubid"
)

// Mock objects

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

// mockQuerier simulates the pubid_counters table for a single key.
type mockQuerier struct {
	mu      sync.Mutex
	exists  bool
	current int64
	failAll bool
}

func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return pgconn.CommandTag{}, errors.New("connection refused")
	}
	// Reset upsert: stored value becomes 0
	m.exists = true
	m.current = 0
	return pgconn.CommandTag{}, nil
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return &mockRow{err: errors.New("connection refused")}
	}
	if strings.Contains(sql, "SELECT") {
		if !m.exists {
			return &mockRow{err: pgx.ErrNoRows}
		}
		return &mockRow{val: m.current}
	}
	// create-or-increment upsert
	if !m.exists {
		m.exists = true
		m.current = 1
	} else {
		m.current++
	}
	return &mockRow{val: m.current}
}

func TestCounterNext_Sequence(t *testing.T) {
	q := &mockQuerier{}
	repo := NewCounterRepoWithQuerier(q)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Next(ctx, "t1", pubid.EntityAuction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}
}

func TestCounterNext_Failure(t *testing.T) {
	q := &mockQuerier{failAll: true}
	repo := NewCounterRepoWithQuerier(q)

	_, err := repo.Next(context.Background(), "t1", pubid.EntityLot)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, pubid.ErrCounterUnavailable) {
		t.Errorf("expected ErrCounterUnavailable, got %v", err)
	}
}

func TestCounterCurrent(t *testing.T) {
	q := &mockQuerier{}
	repo := NewCounterRepoWithQuerier(q)
	ctx := context.Background()

	// never used: 0, no error
	val, err := repo.Current(ctx, "t1", pubid.EntityAsset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Errorf("expected 0 for unused counter, got %d", val)
	}

	_, _ = repo.Next(ctx, "t1", pubid.EntityAsset)
	_, _ = repo.Next(ctx, "t1", pubid.EntityAsset)

	val, err = repo.Current(ctx, "t1", pubid.EntityAsset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 2 {
		t.Errorf("expected 2, got %d", val)
	}
}

func TestCounterReset(t *testing.T) {
	q := &mockQuerier{}
	repo := NewCounterRepoWithQuerier(q)
	ctx := context.Background()

	_, _ = repo.Next(ctx, "t1", pubid.EntitySeller)
	_, _ = repo.Next(ctx, "t1", pubid.EntitySeller)

	if err := repo.Reset(ctx, "t1", pubid.EntitySeller); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, err := repo.Next(ctx, "t1", pubid.EntitySeller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 1 {
		t.Errorf("expected 1 after reset, got %d", val)
	}
}

func TestCounterReset_Failure(t *testing.T) {
	q := &mockQuerier{failAll: true}
	repo := NewCounterRepoWithQuerier(q)

	err := repo.Reset(context.Background(), "t1", pubid.EntityUser)
	if !errors.Is(err, pubid.ErrCounterUnavailable) {
		t.Errorf("expected ErrCounterUnavailable, got %v", err)
	}
}
