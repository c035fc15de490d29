package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"services": map[string]string{
			"batch_prices": "unknown",
			"native_price": "unknown",
			"tokens":       "unknown",
		},
	}

	if s.pricesService.Healthy() {
		status["services"].(map[string]string)["batch_prices"] = "up"
	}

	if s.nativeService.Healthy() {
		status["services"].(map[string]string)["native_price"] = "up"
	}

	if s.tokensService.Healthy() {
		status["services"].(map[string]string)["tokens"] = "up"
	}

	s.sendJSONResponse(w, status)
}
