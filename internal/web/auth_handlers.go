package web

import (
	"log"
	"net/http"

	"studybuddy-web-go/internal/api"
)

// Home checks the upstream session on entry. Authenticated visitors go
// straight to the chat view; everyone else, including visitors we could not
// check because the upstream was unreachable, sees the auth view.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	data := &viewData{
		Alert:        st.popAlert(),
		ShowRegister: r.URL.Query().Get("register") == "1",
	}

	status, err := s.API.CheckAuth(r.Context(), &st.Upstream)
	if err == nil && status.Authenticated && status.User != nil {
		st.User = status.User
		if st.CurrentTab == "" {
			st.CurrentTab = "chat"
		}
		if err := st.save(w, r); err != nil {
			log.Printf("session save: %v", err)
		}
		http.Redirect(w, r, "/app/chat", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Printf("auth check: %v", err)
	}

	st.clearAuth()
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	s.render(w, http.StatusOK, "auth", data)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "auth", &viewData{Alert: &alert{"error", "Invalid form submission"}})
		return
	}
	form := loginForm{
		Username: formValue(r, "username"),
		Password: formValue(r, "password"),
	}
	if err := s.validate.Struct(form); err != nil {
		s.render(w, http.StatusOK, "auth", &viewData{
			Alert: &alert{"error", "Please enter both username and password"},
			Form:  map[string]string{"username": form.Username},
		})
		return
	}

	user, err := s.API.Login(r.Context(), &st.Upstream, form.Username, r.FormValue("password"))
	if err != nil || user == nil {
		log.Printf("login %q: %v", form.Username, err)
		s.render(w, http.StatusOK, "auth", &viewData{
			Alert: &alert{"error", api.UserMessage(err, "Login failed. Please try again.")},
			Form:  map[string]string{"username": form.Username},
		})
		return
	}

	st.User = user
	st.ChatSessionID = ""
	st.CurrentTab = "chat"
	// Each sign-in rebuilds from upstream history, even when the previous
	// session ended without a logout.
	s.Transcripts.Clear(st.owner())
	st.setAlert("success", "Login successful!")
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/app/chat", http.StatusSeeOther)
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	if err := r.ParseForm(); err != nil {
		s.render(w, http.StatusBadRequest, "auth", &viewData{ShowRegister: true, Alert: &alert{"error", "Invalid form submission"}})
		return
	}
	form := registerForm{
		Username:   formValue(r, "username"),
		Email:      formValue(r, "email"),
		Password:   formValue(r, "password"),
		FirstName:  formValue(r, "first_name"),
		LastName:   formValue(r, "last_name"),
		GradeLevel: formValue(r, "grade_level"),
	}
	filled := map[string]string{
		"username":    form.Username,
		"email":       form.Email,
		"first_name":  form.FirstName,
		"last_name":   form.LastName,
		"grade_level": form.GradeLevel,
	}
	if err := s.validate.Struct(form); err != nil {
		s.render(w, http.StatusOK, "auth", &viewData{
			ShowRegister: true,
			Alert:        &alert{"error", "Please fill in all required fields"},
			Form:         filled,
		})
		return
	}

	input := api.RegisterInput{
		Username:   form.Username,
		Email:      form.Email,
		Password:   r.FormValue("password"),
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		GradeLevel: optional(form.GradeLevel),
	}
	if err := s.API.Register(r.Context(), &st.Upstream, input); err != nil {
		log.Printf("register %q: %v", form.Username, err)
		s.render(w, http.StatusOK, "auth", &viewData{
			ShowRegister: true,
			Alert:        &alert{"error", api.UserMessage(err, "Registration failed. Please try again.")},
			Form:         filled,
		})
		return
	}

	// No auto-login: flip back to the login form with a cleared form.
	st.setAlert("success", "Registration successful! Please login.")
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout notifies the upstream best-effort, then clears local session state
// unconditionally.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	if st.User != nil {
		if err := s.API.Logout(r.Context(), &st.Upstream); err != nil {
			log.Printf("logout: %v", err)
		}
		s.Transcripts.Clear(st.owner())
	}
	st.clearAuth()
	st.setAlert("info", "Logged out successfully")
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
