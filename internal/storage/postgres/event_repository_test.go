package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/testutil"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewEventRepository(pool)

	event := domain.Event{
		ID:               uuid.NewString(),
		Name:             "NEET",
		Eligibility:      "12th pass",
		Mode:             "Offline",
		RegistrationDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		TestDate:         time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	got, err := repo.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Name != event.Name || got.Eligibility != event.Eligibility || got.Mode != event.Mode {
		t.Fatalf("unexpected event: %+v", got)
	}
	if !got.RegistrationDate.Equal(event.RegistrationDate) || !got.TestDate.Equal(event.TestDate) {
		t.Fatalf("unexpected dates: %+v", got)
	}
}

func TestEventRepository_SentinelDatesSurviveRoundTrip(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewEventRepository(pool)

	event := domain.Event{
		ID:          uuid.NewString(),
		Name:        "Quiz",
		Eligibility: domain.DefaultEligibility,
		Mode:        domain.DefaultMode,
	}
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	got, err := repo.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if !got.RegistrationDate.IsZero() || !got.TestDate.IsZero() {
		t.Fatalf("expected sentinel dates back, got %+v", got)
	}
}

func TestEventRepository_ListOrderedByRegistrationDate(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewEventRepository(pool)

	later := domain.Event{
		ID:               uuid.NewString(),
		Name:             "Later",
		Eligibility:      "NA",
		Mode:             "NA",
		RegistrationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	earlier := domain.Event{
		ID:               uuid.NewString(),
		Name:             "Earlier",
		Eligibility:      "NA",
		Mode:             "NA",
		RegistrationDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	unset := domain.Event{
		ID:          uuid.NewString(),
		Name:        "Unset",
		Eligibility: "NA",
		Mode:        "NA",
	}

	for _, e := range []domain.Event{later, earlier, unset} {
		if err := repo.CreateEvent(ctx, e); err != nil {
			t.Fatalf("create event %s: %v", e.Name, err)
		}
	}

	events, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Sentinel dates sort first, then ascending by registration date.
	if events[0].Name != "Unset" || events[1].Name != "Earlier" || events[2].Name != "Later" {
		names := []string{events[0].Name, events[1].Name, events[2].Name}
		t.Fatalf("unexpected order: %v", names)
	}
	for i := 1; i < len(events); i++ {
		if events[i].RegistrationDate.Before(events[i-1].RegistrationDate) {
			t.Fatalf("list not non-decreasing by registration date")
		}
	}
}

func TestEventRepository_GetUnknownID(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewEventRepository(pool)

	_, err := repo.GetEvent(ctx, uuid.NewString())
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	// A malformed UUID is just another way of naming nothing.
	_, err = repo.GetEvent(ctx, "not-a-uuid")
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound for bad id, got %v", err)
	}
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := NewEventRepository(pool)

	event := domain.Event{
		ID:          uuid.NewString(),
		Name:        "NEET",
		Eligibility: "NA",
		Mode:        "NA",
	}
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	event.Name = "NEET UG"
	event.TestDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.UpdateEvent(ctx, event); err != nil {
		t.Fatalf("update event: %v", err)
	}

	got, err := repo.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Name != "NEET UG" || !got.TestDate.Equal(event.TestDate) {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := repo.DeleteEvent(ctx, event.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if _, err := repo.GetEvent(ctx, event.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound after delete, got %v", err)
	}

	if err := repo.UpdateEvent(ctx, event); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound updating deleted event, got %v", err)
	}
	if err := repo.DeleteEvent(ctx, event.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound deleting twice, got %v", err)
	}
}
