package web

import "net/http"

// Setup bootstraps the admin account. Idempotent: hitting it again
// never creates a second account.
func (h *Handlers) Setup(w http.ResponseWriter, r *http.Request) {
	if err := h.creds.EnsureAdmin(r.Context()); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// ShowLogin renders the login form. The error flag arrives as a query
// parameter so a failed attempt survives the redirect.
func (h *Handlers) ShowLogin(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "Login")
	data.Error = r.URL.Query().Get("error")
	h.render(w, r, http.StatusOK, "login.html", data)
}

// Login verifies credentials and starts a session. Failures redirect
// back to the login form with the error flag set and no further detail.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=true", http.StatusSeeOther)
		return
	}

	user, err := h.creds.Verify(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		http.Redirect(w, r, "/login?error=true", http.StatusSeeOther)
		return
	}

	session, err := h.sessions.Start(r.Context(), user.ID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if err := h.cookies.Set(w, r, session.ID); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout destroys the session and clears the cookie. Works for
// anonymous visitors too.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := h.cookies.Token(r); token != "" {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			h.logger.Printf("WARN: destroy session: %v", err)
		}
	}
	if err := h.cookies.Clear(w, r); err != nil {
		h.logger.Printf("WARN: clear session cookie: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
