package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"studybuddy-web-go/internal/chat"
	"studybuddy-web-go/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"formatDate":  formatDate,
	"formatClock": formatClock,
}

// newTemplates builds one template set per page, each sharing the base
// layout and the tab partials.
func newTemplates() map[string]*template.Template {
	pages := map[string]*template.Template{}
	for _, name := range []string{"auth", "app"} {
		pages[name] = template.Must(
			template.New("base.html").Funcs(templateFuncs).ParseFS(templateFS,
				"templates/base.html",
				"templates/"+name+".html",
				"templates/tab_*.html",
				"templates/modal_*.html",
			))
	}
	return pages
}

// viewData is everything a page render can need. The active tab decides
// which slice is populated; the rest stay nil.
type viewData struct {
	User      *models.User
	Alert     *alert
	ActiveTab string

	// auth page
	ShowRegister bool
	Form         map[string]string

	// app page
	Transcript []chat.Message
	Notes      []models.Note
	Schedules  []models.Schedule
	Reminders  []models.Reminder
	Modal      string
	ModalForm  map[string]string
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data *viewData) {
	tmpl, ok := s.templates[page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}

// formatDate renders upstream timestamps ("2006-01-02", RFC 3339 or the
// upstream's second-resolution variant) as a short human date. Unparseable
// values pass through untouched.
func formatDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("Jan 2, 2006")
		}
	}
	return raw
}

func formatClock(at time.Time) string {
	return at.Format("3:04 PM")
}
