package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alkautsarf/price-proxy/interfaces"
)

type Server struct {
	port          string
	pricesService interfaces.BatchPricesService
	nativeService interfaces.NativePriceService
	tokensService interfaces.TokensService
	server        *http.Server
}

func New(port string, pricesService interfaces.BatchPricesService, nativeService interfaces.NativePriceService, tokensService interfaces.TokensService) *Server {
	return &Server{
		port:          port,
		pricesService: pricesService,
		nativeService: nativeService,
		tokensService: tokensService,
	}
}

// Router builds the request router. Exposed separately from Start so tests
// can drive handlers without binding a port.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/native-price", s.handleNativePrice).Methods("GET")
	router.HandleFunc("/api/prices/batch", s.handleBatchPrices).Methods("POST")
	router.HandleFunc("/api/prices/batch", s.handleBatchProgress).Methods("GET")
	router.HandleFunc("/api/token-detail", s.handleTokenDetail).Methods("GET")
	router.HandleFunc("/api/token-logos", s.handleTokenLogos).Methods("GET")
	router.HandleFunc("/api/token-price", s.handleTokenPrice).Methods("GET")

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
