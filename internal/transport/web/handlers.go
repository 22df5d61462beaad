package web

import (
	"context"
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/app"
	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/view"
)

// EventService is the minimal catalog interface the handlers need.
type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	Get(ctx context.Context, id string) (domain.Event, error)
	Update(ctx context.Context, id string, in app.UpdateEventInput) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// CredentialService verifies logins and bootstraps the admin account.
type CredentialService interface {
	EnsureAdmin(ctx context.Context) error
	Verify(ctx context.Context, username, password string) (domain.User, error)
}

// SessionService issues and validates login sessions.
type SessionService interface {
	Start(ctx context.Context, userID string) (domain.Session, error)
	Validate(ctx context.Context, token string) (domain.Session, error)
	Destroy(ctx context.Context, token string) error
}

// Handlers holds every collaborator the routes need; all dependencies
// are injected once at process start.
type Handlers struct {
	events   EventService
	creds    CredentialService
	sessions SessionService
	cookies  *SessionCookies
	renderer *view.Renderer
	logger   *log.Logger
}

func NewHandlers(
	events EventService,
	creds CredentialService,
	sessions SessionService,
	cookies *SessionCookies,
	renderer *view.Renderer,
	logger *log.Logger,
) *Handlers {
	if logger == nil {
		logger = log.Default()
	}
	return &Handlers{
		events:   events,
		creds:    creds,
		sessions: sessions,
		cookies:  cookies,
		renderer: renderer,
		logger:   logger,
	}
}

// page carries the fields shared by every view.
type page struct {
	Title     string
	LoggedIn  bool
	Error     string
	CSRFField template.HTML
}

type eventsPage struct {
	page
	Events []domain.Event
}

type eventPage struct {
	page
	Event domain.Event
}

func (h *Handlers) newPage(r *http.Request, title string) page {
	return page{
		Title:     title,
		LoggedIn:  h.loggedIn(r),
		CSRFField: csrf.TemplateField(r),
	}
}

func (h *Handlers) loggedIn(r *http.Request) bool {
	token := h.cookies.Token(r)
	if token == "" {
		return false
	}
	_, err := h.sessions.Validate(r.Context(), token)
	return err == nil
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, name, data); err != nil {
		h.logger.Printf("render %s: %v", name, err)
	}
}

// serverError is the single server-error representation; every store
// failure on a read path funnels through here.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	h.render(w, r, http.StatusInternalServerError, "error500.html", h.newPage(r, "Server Error"))
}

// clientError renders the 400 view used when a requested event is absent.
func (h *Handlers) clientError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusBadRequest, "error400.html", h.newPage(r, "Not Found"))
}

// NotFound renders the client-error view for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error400.html", h.newPage(r, "Not Found"))
}

// HealthHandler reports basic liveness for the service.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
