package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alkautsarf/price-proxy/coingecko_common"
)

// sendJSONResponse is a common wrapper for JSON responses that sets
// Content-Type, Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// ETag is the MD5 hash of the response
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendErrorResponse writes an error as a JSON body with the given status
func (s *Server) sendErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Error writing error response: %v", err)
	}
}

// sendUpstreamError forwards a failed upstream response verbatim: same
// status code, content type and body. Returns false when the error does not
// carry an upstream response.
func (s *Server) sendUpstreamError(w http.ResponseWriter, err error) bool {
	upstreamErr, ok := coingecko_common.AsUpstreamError(err)
	if !ok {
		return false
	}

	contentType := upstreamErr.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(upstreamErr.StatusCode)
	if _, writeErr := w.Write(upstreamErr.Body); writeErr != nil {
		log.Printf("Error writing upstream error response: %v", writeErr)
	}
	return true
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

func getParamLowercase(r *http.Request, key string) string {
	value := r.URL.Query().Get(key)
	return strings.ToLower(strings.TrimSpace(value))
}

func splitParamLowercase(param string) []string {
	if param == "" {
		return []string{}
	}

	parts := strings.Split(param, ",")
	result := []string{}
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
