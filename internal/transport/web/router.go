package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes wires every handler to its verb/path. Protected routes pass
// through requireLogin; the login form is guest-only.
func (h *Handlers) Routes(staticDir string) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/setup", h.Setup).Methods(http.MethodGet)

	r.Handle("/login", h.requireGuest(http.HandlerFunc(h.ShowLogin))).Methods(http.MethodGet)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodGet)

	r.Handle("/add", h.requireLogin(http.HandlerFunc(h.ShowAddForm))).Methods(http.MethodGet)
	r.Handle("/events/add", h.requireLogin(http.HandlerFunc(h.AddEvent))).Methods(http.MethodPost)
	r.Handle("/dashboard", h.requireLogin(http.HandlerFunc(h.Dashboard))).Methods(http.MethodGet)
	r.Handle("/edit/{id}", h.requireLogin(http.HandlerFunc(h.ShowEditForm))).Methods(http.MethodGet)
	r.Handle("/events/{id}", h.requireLogin(http.HandlerFunc(h.UpdateEvent))).Methods(http.MethodPut)
	r.Handle("/events/{id}", h.requireLogin(http.HandlerFunc(h.DeleteEvent))).Methods(http.MethodDelete)

	if staticDir != "" {
		r.PathPrefix("/public/").Handler(
			http.StripPrefix("/public/", http.FileServer(http.Dir(staticDir))))
	}

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	return r
}
