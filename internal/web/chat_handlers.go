package web

import (
	"log"
	"net/http"

	"studybuddy-web-go/internal/chat"

	"github.com/go-chi/chi/v5"
)

var tabNames = map[string]bool{
	"chat":      true,
	"notes":     true,
	"schedule":  true,
	"reminders": true,
}

// ShowTab renders exactly one panel. The tab is an explicit URL segment, and
// the list tabs re-fetch on every visit; nothing is cached across switches.
func (s *Server) ShowTab(w http.ResponseWriter, r *http.Request) {
	tab := chi.URLParam(r, "tab")
	if !tabNames[tab] {
		http.NotFound(w, r)
		return
	}

	st := s.state(r)
	data := &viewData{
		User:      st.User,
		Alert:     st.popAlert(),
		ActiveTab: tab,
	}

	ctx := r.Context()
	switch tab {
	case "chat":
		// The transcript is rebuilt from upstream history once per sign-in;
		// afterwards the store is the source of truth.
		if !s.Transcripts.Loaded(st.owner()) {
			history, err := s.API.History(ctx, &st.Upstream, 20)
			if err != nil {
				log.Printf("chat history: %v", err)
			} else {
				s.Transcripts.Replace(st.owner(), history)
			}
		}
		data.Transcript = s.Transcripts.Messages(st.owner())
	case "notes":
		notes, err := s.API.Notes(ctx, &st.Upstream)
		if err != nil {
			log.Printf("notes load: %v", err)
		}
		data.Notes = notes
	case "schedule":
		schedules, err := s.API.Schedules(ctx, &st.Upstream)
		if err != nil {
			log.Printf("schedule load: %v", err)
		}
		data.Schedules = schedules
	case "reminders":
		reminders, err := s.API.Reminders(ctx, &st.Upstream)
		if err != nil {
			log.Printf("reminders load: %v", err)
		}
		data.Reminders = reminders
	}

	if r.URL.Query().Get("new") == "1" && tab != "chat" {
		data.Modal = tab
	}

	st.CurrentTab = tab
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	s.render(w, http.StatusOK, "app", data)
}

// SendMessage appends the user's turn before the upstream call (optimistic
// echo). A failed send becomes the fixed apology bot turn rather than an
// alert, keeping the transcript the single channel for conversation
// feedback.
func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	message := formValue(r, "message")
	if message == "" {
		http.Redirect(w, r, "/app/chat", http.StatusSeeOther)
		return
	}

	owner := st.owner()
	s.Transcripts.Append(owner, chat.Message{Role: chat.RoleUser, Text: message})

	var sessionID *string
	if st.ChatSessionID != "" {
		sessionID = &st.ChatSessionID
	}
	reply, err := s.API.SendMessage(r.Context(), &st.Upstream, message, sessionID)
	if err != nil {
		log.Printf("send message: %v", err)
		s.Transcripts.Append(owner, chat.Message{Role: chat.RoleBot, Text: chat.ErrorReply})
		http.Redirect(w, r, "/app/chat", http.StatusSeeOther)
		return
	}

	// The upstream owns session continuity; adopt its identifier every time.
	st.ChatSessionID = reply.SessionID
	s.Transcripts.Append(owner, chat.Message{Role: chat.RoleBot, Text: reply.Response})
	if err := st.save(w, r); err != nil {
		log.Printf("session save: %v", err)
	}
	http.Redirect(w, r, "/app/chat", http.StatusSeeOther)
}
