// Package web is the UI controller: it renders the study-assistant views and
// mediates between browser form posts, the upstream API and the per-user
// session state.
package web

import (
	"html/template"
	"net/http"

	"studybuddy-web-go/internal/api"
	"studybuddy-web-go/internal/chat"
	"studybuddy-web-go/internal/config"
	"studybuddy-web-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
)

type Server struct {
	API         *api.Client
	Config      config.Config
	Store       *sessions.CookieStore
	Transcripts *chat.TranscriptStore
	Status      *services.StatusMonitor

	templates map[string]*template.Template
	validate  *validator.Validate
}

func NewServer(client *api.Client, cfg config.Config, monitor *services.StatusMonitor) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Server{
		API:         client,
		Config:      cfg,
		Store:       store,
		Transcripts: chat.NewTranscriptStore(),
		Status:      monitor,
		templates:   newTemplates(),
		validate:    validator.New(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/", s.Home)
	r.Post("/login", s.Login)
	r.Post("/register", s.Register)
	r.Post("/logout", s.Logout)

	r.Route("/app", func(app chi.Router) {
		app.Use(s.RequireUser)
		app.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/app/chat", http.StatusSeeOther)
		})
		app.Get("/{tab}", s.ShowTab)
		app.Post("/chat/message", s.SendMessage)
		app.Post("/notes", s.CreateNote)
		app.Post("/schedule", s.CreateSchedule)
		app.Post("/reminders", s.CreateReminder)
	})

	r.Get("/api/status", s.StatusHandler)
	return r
}
