package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"studybuddy-web-go/internal/api"
	"studybuddy-web-go/internal/config"
	"studybuddy-web-go/internal/models"
	"studybuddy-web-go/internal/services"

	"github.com/stretchr/testify/require"
)

// fakeUpstream stands in for the study-assistant API and records traffic so
// tests can assert how often, and with what, the frontend called out.
type fakeUpstream struct {
	server *httptest.Server

	mu            sync.Mutex
	loginCalls    int
	registerCalls int
	logoutCalls   int
	historyGets   int
	sendCalls     int
	notesGets     int
	noteCreates   int
	scheduleGets  int
	reminderGets  int

	sentBodies []map[string]json.RawMessage
	lastCookie string

	history    []models.ChatExchange
	notes      []models.Note
	schedules  []models.Schedule
	reminders  []models.Reminder
	failSend   bool
	failLogout bool
}

func newFakeUpstream() *fakeUpstream {
	f := &fakeUpstream{}
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}

	mux.HandleFunc("/api/auth/check-auth", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"authenticated":false}`)
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.loginCalls++
		f.mu.Unlock()
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, `{"error":"Invalid username or password"}`)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "upstream-token"})
		writeJSON(w, http.StatusOK, `{"user":{"id":7,"username":"sara","email":"sara@example.com","first_name":"Sara","last_name":"Ilie","grade_level":null}}`)
	})
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.registerCalls++
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, `{"message":"User registered successfully"}`)
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.logoutCalls++
		fail := f.failLogout
		f.mu.Unlock()
		if fail {
			writeJSON(w, http.StatusInternalServerError, `{"error":"Logout failed"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"message":"Logout successful"}`)
	})
	mux.HandleFunc("/api/chat/message", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.sendCalls++
		fail := f.failSend
		var body map[string]json.RawMessage
		json.NewDecoder(r.Body).Decode(&body)
		f.sentBodies = append(f.sentBodies, body)
		f.mu.Unlock()
		if fail {
			writeJSON(w, http.StatusInternalServerError, `{"error":"Failed to process message"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"session_id":"sess-1","response":"Hello! I can help with that.","timestamp":"2026-08-28T10:00:00"}`)
	})
	mux.HandleFunc("/api/chat/history", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.historyGets++
		history := f.history
		f.mu.Unlock()
		payload, _ := json.Marshal(map[string]interface{}{"history": history})
		writeJSON(w, http.StatusOK, string(payload))
	})
	mux.HandleFunc("/api/chat/notes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lastCookie = r.Header.Get("Cookie")
		if r.Method == http.MethodPost {
			f.noteCreates++
			writeJSON(w, http.StatusCreated, `{"message":"Note created successfully"}`)
			return
		}
		f.notesGets++
		payload, _ := json.Marshal(map[string]interface{}{"notes": f.notes})
		writeJSON(w, http.StatusOK, string(payload))
	})
	mux.HandleFunc("/api/chat/schedule", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodPost {
			writeJSON(w, http.StatusCreated, `{"message":"Schedule created successfully"}`)
			return
		}
		f.scheduleGets++
		payload, _ := json.Marshal(map[string]interface{}{"schedules": f.schedules})
		writeJSON(w, http.StatusOK, string(payload))
	})
	mux.HandleFunc("/api/chat/reminders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodPost {
			writeJSON(w, http.StatusCreated, `{"message":"Reminder created successfully"}`)
			return
		}
		f.reminderGets++
		payload, _ := json.Marshal(map[string]interface{}{"reminders": f.reminders})
		writeJSON(w, http.StatusOK, string(payload))
	})

	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeUpstream) count(field *int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *field
}

type testApp struct {
	fake   *fakeUpstream
	server *Server
	web    *httptest.Server
	client *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	fake := newFakeUpstream()
	cfg := config.Config{
		UpstreamBaseURL: fake.server.URL,
		UpstreamTimeout: 2 * time.Second,
		SessionSecret:   "0123456789abcdef0123456789abcdef",
		SessionName:     "studybuddy-test",
	}
	server := NewServer(api.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout), cfg, services.NewStatusMonitor())
	web := httptest.NewServer(server.Router())
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	t.Cleanup(web.Close)
	t.Cleanup(fake.server.Close)
	return &testApp{
		fake:   fake,
		server: server,
		web:    web,
		client: &http.Client{Jar: jar},
	}
}

// post submits a form and returns the final page after redirects.
func (a *testApp) post(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := a.client.PostForm(a.web.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	return readBody(t, resp)
}

func (a *testApp) get(t *testing.T, path string) string {
	t.Helper()
	resp, err := a.client.Get(a.web.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	return readBody(t, resp)
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	return a.post(t, "/login", url.Values{"username": {"sara"}, "password": {"secret"}})
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
