package web

import "net/http"

// StatusHandler reports the latest health sample gathered by the background
// monitor.
func (s *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	sample, ok := s.Status.Latest()
	if !ok {
		WriteError(w, http.StatusServiceUnavailable, "No status sample captured yet")
		return
	}
	WriteJSON(w, http.StatusOK, sample)
}
