package api

import (
	"errors"
	"net/http"

	"github.com/alkautsarf/price-proxy/coingecko_tokens"
)

// handleTokenDetail fetches price, 24h change and logo for one contract
// address. Upstream failures are passed through verbatim.
func (s *Server) handleTokenDetail(w http.ResponseWriter, r *http.Request) {
	platform := getParamLowercase(r, "platform")
	address := getParamLowercase(r, "address")

	if platform == "" || address == "" {
		s.sendErrorResponse(w, http.StatusBadRequest, "platform and address parameters are required")
		return
	}

	detail, err := s.tokensService.TokenDetail(r.Context(), platform, address)
	if err != nil {
		if s.sendUpstreamError(w, err) {
			return
		}
		if errors.Is(err, coingecko_tokens.ErrBadRequest) {
			s.sendErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.sendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch token detail: "+err.Error())
		return
	}

	s.sendJSONResponse(w, detail)
}

// handleTokenLogos resolves logo URLs for a set of contract addresses,
// returning whatever subset resolved
func (s *Server) handleTokenLogos(w http.ResponseWriter, r *http.Request) {
	platform := getParamLowercase(r, "platform")
	param := r.URL.Query().Get("contracts")
	if param == "" {
		param = r.URL.Query().Get("contract_addresses")
	}
	contracts := splitParamLowercase(param)

	if platform == "" || len(contracts) == 0 {
		s.sendErrorResponse(w, http.StatusBadRequest, "platform and contracts parameters are required")
		return
	}

	logos, err := s.tokensService.TokenLogos(r.Context(), platform, contracts)
	if err != nil {
		if errors.Is(err, coingecko_tokens.ErrBadRequest) {
			s.sendErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.sendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch token logos: "+err.Error())
		return
	}

	s.sendJSONResponse(w, logos)
}
