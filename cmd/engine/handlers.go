package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/piyushdaiya/wallet-classifier/internal/metrics"
	"github.com/piyushdaiya/wallet-classifier/internal/validator"
	"github.com/piyushdaiya/wallet-classifier/internal/watchlist"
)

type server struct {
	classifier *validator.Classifier
	watchlist  watchlist.Lookuper
	logger     *log.Entry
}

func newRouter(s *server) *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware, metrics.HTTPMiddleware)

	r.HandleFunc("/classify", s.classifyHandler).Methods(http.MethodGet)
	r.HandleFunc("/check", s.checkAddressHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func (s *server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(w, r)

		s.logger.WithFields(log.Fields{
			"request_id": reqID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"took":       time.Since(start).String(),
		}).Info("request")
	})
}

func addressParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		http.Error(w, "Missing address parameter", http.StatusBadRequest)
		return "", false
	}
	return address, true
}

func (s *server) classifyHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	res := s.classifier.Profile(address, r.URL.Query().Get("explain") == "true")
	metrics.RecordClassification(res.Network, "engine")
	writeJSON(w, http.StatusOK, res)
}

// checkAddressHandler classifies the address and reports whether it is on
// the sanctions watchlist.
func (s *server) checkAddressHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	res := s.classifier.Profile(address, false)
	metrics.RecordClassification(res.Network, "engine")

	entry, err := s.watchlist.Lookup(r.Context(), address)
	sanctioned := err == nil
	switch {
	case err == nil:
		res.Currency = entry.Currency
		res.Source = entry.Source
	case errors.Is(err, watchlist.ErrNotFound):
	default:
		s.logger.WithError(err).Error("Watchlist lookup failed")
		http.Error(w, "watchlist lookup failed", http.StatusInternalServerError)
		return
	}
	res.Sanctioned = &sanctioned

	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Error encoding JSON")
	}
}
