package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/app"
	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
)

const dateFieldLayout = "2006-01-02"

// parseDateField reads a form date. Empty or malformed input counts as
// "not submitted" and returns nil.
func parseDateField(r *http.Request, name string) *time.Time {
	raw := r.PostFormValue(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateFieldLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// ListEvents renders the public list, ascending by registration date.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "main.html", eventsPage{
		page:   h.newPage(r, "Home"),
		Events: events,
	})
}

// Dashboard renders the management view for the admin.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "dashboard.html", eventsPage{
		page:   h.newPage(r, "Dashboard"),
		Events: events,
	})
}

// ShowAddForm renders the event creation form.
func (h *Handlers) ShowAddForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "add.html", h.newPage(r, "Add Event"))
}

// AddEvent creates an event from the submitted form. Both a missing
// name and a store failure re-render the form with a message rather
// than losing the admin's place.
func (h *Handlers) AddEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderAddError(w, r, "Please fill all the fields")
		return
	}

	_, err := h.events.Create(r.Context(), app.CreateEventInput{
		Name:             r.PostFormValue("name"),
		Eligibility:      r.PostFormValue("eligibility"),
		Mode:             r.PostFormValue("mode"),
		RegistrationDate: parseDateField(r, "registrationDate"),
		TestDate:         parseDateField(r, "testDate"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventNameRequired) {
			h.renderAddError(w, r, "Please fill all the fields")
			return
		}
		h.logger.Printf("ERROR: create event: %v", err)
		h.renderAddError(w, r, "Could not save the event, please try again")
		return
	}
	http.Redirect(w, r, "/add", http.StatusSeeOther)
}

func (h *Handlers) renderAddError(w http.ResponseWriter, r *http.Request, msg string) {
	data := h.newPage(r, "Add Event")
	data.Error = msg
	h.render(w, r, http.StatusOK, "add.html", data)
}

// ShowEditForm renders the edit form for one event; an unknown id gets
// the client-error view.
func (h *Handlers) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) || errors.Is(err, domain.ErrInvalidID) {
			h.clientError(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "edit.html", eventPage{
		page:  h.newPage(r, "Edit Event"),
		Event: event,
	})
}

// UpdateEvent applies the edit form. Name, eligibility and mode are
// overwritten with whatever was submitted; each date is only
// overwritten when present.
func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.clientError(w, r)
		return
	}

	id := mux.Vars(r)["id"]
	_, err := h.events.Update(r.Context(), id, app.UpdateEventInput{
		Name:             r.PostFormValue("name"),
		Eligibility:      r.PostFormValue("eligibility"),
		Mode:             r.PostFormValue("mode"),
		RegistrationDate: parseDateField(r, "registrationDate"),
		TestDate:         parseDateField(r, "testDate"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrInvalidID):
			h.clientError(w, r)
		case errors.Is(err, domain.ErrEventNameRequired):
			h.renderEditError(w, r, id, "Please fill all the fields")
		default:
			h.serverError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) renderEditError(w http.ResponseWriter, r *http.Request, id, msg string) {
	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		h.clientError(w, r)
		return
	}
	data := eventPage{page: h.newPage(r, "Edit Event"), Event: event}
	data.Error = msg
	h.render(w, r, http.StatusOK, "edit.html", data)
}

// DeleteEvent removes one event; an unknown id gets the client-error view.
func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	err := h.events.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) || errors.Is(err, domain.ErrInvalidID) {
			h.clientError(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
