package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
)

// EventRepository persists events. Unset dates are stored as NULL and
// surface as the zero time.Time.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO events (id, name, eligibility, mode, registration_date, test_date)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, stmt,
		event.ID,
		event.Name,
		event.Eligibility,
		event.Mode,
		nullableTime(event.RegistrationDate),
		nullableTime(event.TestDate),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT id, name, eligibility, mode, registration_date, test_date
FROM events
ORDER BY registration_date ASC NULLS FIRST, created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	const query = `
SELECT id, name, eligibility, mode, registration_date, test_date
FROM events
WHERE id = $1`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		if isInvalidUUID(err) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
UPDATE events
SET name = $2, eligibility = $3, mode = $4, registration_date = $5, test_date = $6
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt,
		event.ID,
		event.Name,
		event.Eligibility,
		event.Mode,
		nullableTime(event.RegistrationDate),
		nullableTime(event.TestDate),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		event            domain.Event
		registrationDate *time.Time
		testDate         *time.Time
	)
	if err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Eligibility,
		&event.Mode,
		&registrationDate,
		&testDate,
	); err != nil {
		return domain.Event{}, err
	}
	if registrationDate != nil {
		event.RegistrationDate = registrationDate.UTC()
	}
	if testDate != nil {
		event.TestDate = testDate.UTC()
	}
	return event, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
