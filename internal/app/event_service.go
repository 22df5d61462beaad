package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
)

type EventRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) error
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

// EventService owns the event catalog: listing for visitors and
// create/update/delete for the admin dashboard.
type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

type CreateEventInput struct {
	Name        string
	Eligibility string
	Mode        string
	// Nil date means the field was not submitted.
	RegistrationDate *time.Time
	TestDate         *time.Time
}

// complete reports whether every optional field was submitted. When any
// is missing, Create resets all four to their defaults rather than
// defaulting only the missing ones.
func (in CreateEventInput) complete() bool {
	return in.Eligibility != "" && in.Mode != "" && in.RegistrationDate != nil && in.TestDate != nil
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	if in.Name == "" {
		return domain.Event{}, domain.ErrEventNameRequired
	}

	event := domain.Event{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Eligibility: domain.DefaultEligibility,
		Mode:        domain.DefaultMode,
	}
	if in.complete() {
		event.Eligibility = in.Eligibility
		event.Mode = in.Mode
		event.RegistrationDate = in.RegistrationDate.UTC()
		event.TestDate = in.TestDate.UTC()
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *EventService) Get(ctx context.Context, id string) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.ErrInvalidID
	}
	return s.repo.GetEvent(ctx, id)
}

type UpdateEventInput struct {
	Name        string
	Eligibility string
	Mode        string
	// Nil date means the stored value is kept. This intentionally
	// differs from the create path, where a missing date resets every
	// optional field.
	RegistrationDate *time.Time
	TestDate         *time.Time
}

func (s *EventService) Update(ctx context.Context, id string, in UpdateEventInput) (domain.Event, error) {
	if in.Name == "" {
		return domain.Event{}, domain.ErrEventNameRequired
	}

	event, err := s.Get(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	event.Name = in.Name
	event.Eligibility = in.Eligibility
	event.Mode = in.Mode
	if in.RegistrationDate != nil {
		event.RegistrationDate = in.RegistrationDate.UTC()
	}
	if in.TestDate != nil {
		event.TestDate = in.TestDate.UTC()
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteEvent(ctx, id)
}
