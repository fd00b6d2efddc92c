package handler

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmateos/startrader/internal/service"
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all routes registered, request
// logging, and Content-Type validation middleware. The hub may be nil
// when the websocket push channel is disabled.
func NewRouter(
	marketSvc *service.MarketService,
	tradeSvc *service.TradeService,
	travelSvc *service.TravelService,
	unitSvc *service.UnitService,
	ledgerSvc *service.LedgerService,
	hub *Hub,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(contentTypeJSON)

	// Create handlers.
	marketH := NewMarketHandler(marketSvc)
	tradeH := NewTradeHandler(tradeSvc)
	travelH := NewTravelHandler(travelSvc)
	unitH := NewUnitHandler(unitSvc)
	ledgerH := NewLedgerHandler(ledgerSvc)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Market routes.
	r.Get("/locations", marketH.ListLocations)
	r.Get("/locations/{location}/market", marketH.GetMarket)
	r.Get("/locations/{location}/price/{commodity}", marketH.GetPrice)
	r.Get("/locations/{location}/history/{commodity}", marketH.GetHistory)

	// Trade routes.
	r.Post("/trades/buy", tradeH.Buy)
	r.Post("/trades/sell", tradeH.Sell)

	// Travel and turn routes.
	r.Get("/travel/{destination}", travelH.Check)
	r.Post("/travel", travelH.Travel)
	r.Post("/turn/wait", travelH.Wait)

	// Unit routes.
	r.Post("/units/deploy", unitH.Deploy)
	r.Get("/units/{kind}/income", unitH.Income)

	// Ledger routes.
	r.Get("/ledger", ledgerH.GetLedger)
	r.Get("/ledger/quantity/{commodity}", ledgerH.GetQuantity)

	// Render-trigger push channel.
	if hub != nil {
		r.Get("/ws", hub.ServeWS)
	}

	return r
}

// requestLogging returns middleware that logs each request's method,
// path, status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrade reach the underlying connection
// through the logging wrapper.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}

// contentTypeJSON is middleware that validates Content-Type for POST,
// PUT, and PATCH requests. If the Content-Type header doesn't start with
// "application/json", it returns 400 Bad Request before the handler
// runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
