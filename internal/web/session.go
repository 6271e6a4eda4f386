package web

import (
	"encoding/gob"
	"net/http"
	"strconv"

	"studybuddy-web-go/internal/api"
	"studybuddy-web-go/internal/models"

	"github.com/gorilla/sessions"
)

const (
	sessionKeyUser     = "user"
	sessionKeyUpstream = "upstream_cookie"
	sessionKeyChatID   = "chat_session_id"
	sessionKeyTab      = "current_tab"
)

func init() {
	gob.Register(&models.User{})
	gob.Register(alert{})
}

// alert is the single transient banner. At most one is pending at a time.
type alert struct {
	Level string
	Text  string
}

// sessionState mirrors the three pieces of per-user UI state plus the
// upstream session cookie. It is initialized empty and mutated only by the
// designated handlers.
type sessionState struct {
	session *sessions.Session

	User          *models.User
	Upstream      api.Auth
	ChatSessionID string
	CurrentTab    string
}

func (s *Server) state(r *http.Request) *sessionState {
	session, _ := s.Store.Get(r, s.Config.SessionName)
	st := &sessionState{session: session}
	if user, ok := session.Values[sessionKeyUser].(*models.User); ok {
		st.User = user
	}
	if cookie, ok := session.Values[sessionKeyUpstream].(string); ok {
		st.Upstream.Cookie = cookie
	}
	if id, ok := session.Values[sessionKeyChatID].(string); ok {
		st.ChatSessionID = id
	}
	if tab, ok := session.Values[sessionKeyTab].(string); ok {
		st.CurrentTab = tab
	}
	return st
}

func (st *sessionState) save(w http.ResponseWriter, r *http.Request) error {
	if st.User != nil {
		st.session.Values[sessionKeyUser] = st.User
	} else {
		delete(st.session.Values, sessionKeyUser)
	}
	st.session.Values[sessionKeyUpstream] = st.Upstream.Cookie
	st.session.Values[sessionKeyChatID] = st.ChatSessionID
	st.session.Values[sessionKeyTab] = st.CurrentTab
	return st.session.Save(r, w)
}

// clearAuth drops everything tied to the signed-in user.
func (st *sessionState) clearAuth() {
	st.User = nil
	st.Upstream = api.Auth{}
	st.ChatSessionID = ""
	st.CurrentTab = ""
}

// owner keys the transcript store for the signed-in user.
func (st *sessionState) owner() string {
	if st.User == nil {
		return ""
	}
	return strconv.Itoa(st.User.ID)
}

// setAlert replaces any pending alert with a new one.
func (st *sessionState) setAlert(level, text string) {
	st.session.Flashes()
	st.session.AddFlash(alert{Level: level, Text: text})
}

// popAlert consumes the pending alert, if any.
func (st *sessionState) popAlert() *alert {
	flashes := st.session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if a, ok := flashes[len(flashes)-1].(alert); ok {
		return &a
	}
	return nil
}
