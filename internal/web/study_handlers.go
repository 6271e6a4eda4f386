package web

import (
	"log"
	"net/http"
	"strconv"

	"studybuddy-web-go/internal/api"
)

// The three list resources share one create pipeline: trim, presence check
// (short-circuits before any upstream call), POST, then close the modal and
// reload on success or re-open it with the error on failure.

func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/app/notes", http.StatusSeeOther)
		return
	}
	form := noteForm{
		Subject: formValue(r, "subject"),
		Topic:   formValue(r, "topic"),
		Content: formValue(r, "content"),
	}
	filled := map[string]string{
		"subject": form.Subject,
		"topic":   form.Topic,
		"content": form.Content,
	}
	if err := s.validate.Struct(form); err != nil {
		s.renderModal(w, st, "notes", filled, &alert{"error", "Please fill in all fields"})
		return
	}

	input := api.NoteInput{Subject: form.Subject, Topic: form.Topic, Content: form.Content}
	if err := s.API.CreateNote(r.Context(), &st.Upstream, input); err != nil {
		log.Printf("create note: %v", err)
		s.renderModal(w, st, "notes", filled, &alert{"error", api.UserMessage(err, "Failed to save note")})
		return
	}

	st.setAlert("success", "Note saved successfully!")
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/app/notes", http.StatusSeeOther)
}

func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/app/schedule", http.StatusSeeOther)
		return
	}
	form := scheduleForm{
		Subject:  formValue(r, "subject"),
		Topic:    formValue(r, "topic"),
		Date:     formValue(r, "date"),
		Time:     formValue(r, "time"),
		Duration: formInt(r, "duration", 60),
		Notes:    formValue(r, "notes"),
	}
	filled := map[string]string{
		"subject":  form.Subject,
		"topic":    form.Topic,
		"date":     form.Date,
		"time":     form.Time,
		"duration": strconv.Itoa(form.Duration),
		"notes":    form.Notes,
	}
	if err := s.validate.Struct(form); err != nil {
		s.renderModal(w, st, "schedule", filled, &alert{"error", "Please fill in all required fields"})
		return
	}

	input := api.ScheduleInput{
		Subject:         form.Subject,
		Topic:           form.Topic,
		ScheduledDate:   form.Date,
		ScheduledTime:   form.Time,
		DurationMinutes: form.Duration,
		Notes:           optional(form.Notes),
	}
	if err := s.API.CreateSchedule(r.Context(), &st.Upstream, input); err != nil {
		log.Printf("create schedule: %v", err)
		s.renderModal(w, st, "schedule", filled, &alert{"error", api.UserMessage(err, "Failed to create schedule")})
		return
	}

	st.setAlert("success", "Schedule created successfully!")
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/app/schedule", http.StatusSeeOther)
}

func (s *Server) CreateReminder(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/app/reminders", http.StatusSeeOther)
		return
	}
	form := reminderForm{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Date:        formValue(r, "date"),
		Time:        formValue(r, "time"),
	}
	filled := map[string]string{
		"title":       form.Title,
		"description": form.Description,
		"date":        form.Date,
		"time":        form.Time,
	}
	if err := s.validate.Struct(form); err != nil {
		s.renderModal(w, st, "reminders", filled, &alert{"error", "Please fill in all required fields"})
		return
	}

	input := api.ReminderInput{
		Title:        form.Title,
		Description:  optional(form.Description),
		ReminderDate: form.Date,
		ReminderTime: form.Time,
	}
	if err := s.API.CreateReminder(r.Context(), &st.Upstream, input); err != nil {
		log.Printf("create reminder: %v", err)
		s.renderModal(w, st, "reminders", filled, &alert{"error", api.UserMessage(err, "Failed to create reminder")})
		return
	}

	st.setAlert("success", "Reminder created successfully!")
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/app/reminders", http.StatusSeeOther)
}

// renderModal re-renders the active tab with the create modal open and the
// entered values preserved. The list behind the modal is not re-fetched; a
// rejected submission must not cost a network round trip.
func (s *Server) renderModal(w http.ResponseWriter, st *sessionState, tab string, form map[string]string, a *alert) {
	s.render(w, http.StatusOK, "app", &viewData{
		User:      st.User,
		Alert:     a,
		ActiveTab: tab,
		Modal:     tab,
		ModalForm: form,
	})
}
