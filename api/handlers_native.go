package api

import (
	"net/http"
)

// handleNativePrice responds with the native coin quote. A stale quote is
// served when the upstream refresh fails; an error surfaces only when no
// quote was ever fetched.
func (s *Server) handleNativePrice(w http.ResponseWriter, r *http.Request) {
	entry, err := s.nativeService.NativePrice(r.Context())
	if err != nil {
		if s.sendUpstreamError(w, err) {
			return
		}
		s.sendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch native price: "+err.Error())
		return
	}

	s.sendJSONResponse(w, entry)
}
