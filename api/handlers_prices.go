package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alkautsarf/price-proxy/coingecko_prices"
	"github.com/alkautsarf/price-proxy/interfaces"
)

// batchPricesRequest is the POST body for a batch price fetch
type batchPricesRequest struct {
	Platform          string   `json:"platform"`
	ContractAddresses []string `json:"contract_addresses"`
}

// handleBatchPrices resolves prices for a set of contract addresses on one
// platform. Individual upstream failures degrade to omitted entries rather
// than failing the batch.
func (s *Server) handleBatchPrices(w http.ResponseWriter, r *http.Request) {
	var request batchPricesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if request.Platform == "" || len(request.ContractAddresses) == 0 {
		s.sendErrorResponse(w, http.StatusBadRequest, "platform and contract_addresses are required")
		return
	}

	prices, err := s.pricesService.FetchBatch(r.Context(), request.Platform, request.ContractAddresses)
	if err != nil {
		if errors.Is(err, coingecko_prices.ErrBadRequest) {
			s.sendErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.sendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch prices: "+err.Error())
		return
	}

	s.sendJSONResponse(w, prices)
}

// handleBatchProgress reports the progress of the most recent batch for a
// platform. A missing or unknown platform yields a zeroed, not-running
// record rather than an error.
func (s *Server) handleBatchProgress(w http.ResponseWriter, r *http.Request) {
	platform := getParamLowercase(r, "platform")
	if platform == "" {
		s.sendJSONResponse(w, interfaces.BatchProgress{})
		return
	}

	s.sendJSONResponse(w, s.pricesService.Progress(platform))
}

// handleTokenPrice proxies one batch simple token price call, passing the
// provider response through with normalized keys
func (s *Server) handleTokenPrice(w http.ResponseWriter, r *http.Request) {
	platform := getParamLowercase(r, "platform")
	// Older clients send "contracts" instead of "contract_addresses"
	param := r.URL.Query().Get("contract_addresses")
	if param == "" {
		param = r.URL.Query().Get("contracts")
	}
	addresses := splitParamLowercase(param)

	if platform == "" || len(addresses) == 0 {
		s.sendErrorResponse(w, http.StatusBadRequest, "platform and contract_addresses parameters are required")
		return
	}

	prices, err := s.pricesService.SimpleTokenPrices(r.Context(), platform, addresses)
	if err != nil {
		if s.sendUpstreamError(w, err) {
			return
		}
		if errors.Is(err, coingecko_prices.ErrBadRequest) {
			s.sendErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.sendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch token prices: "+err.Error())
		return
	}

	s.sendJSONResponse(w, prices)
}
