package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txlens7000-backend/internal/esplora"
	"github.com/goodnatureofminers/txlens7000-backend/internal/metrics"
	"github.com/goodnatureofminers/txlens7000-backend/internal/service"
)

// ExplainerHandler serves transaction explanations over HTTP.
type ExplainerHandler struct {
	svc    TxService
	logger *zap.Logger
}

// NewExplainerHandler returns an ExplainerHandler instance.
func NewExplainerHandler(svc TxService, logger *zap.Logger) *ExplainerHandler {
	return &ExplainerHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register attaches the handler's routes to the router.
func (h *ExplainerHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tx/{txid}", h.ExplainTransaction).Methods(http.MethodGet)
	router.HandleFunc("/api/mempool/sample", h.SampleTxIDs).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

type errorResponse struct {
	Error string `json:"error"`
}

// ExplainTransaction handles GET /api/tx/{txid}.
func (h *ExplainerHandler) ExplainTransaction(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	txid := mux.Vars(r)["txid"]

	summary, err := h.svc.Explain(r.Context(), txid)
	if err != nil {
		outcome, status, msg := classifyError(err)
		metrics.ObserveExplain(outcome, started)
		if outcome != metrics.ExplainInvalidTxID {
			// Upstream detail is logged, never exposed verbatim to callers.
			h.logger.Error("explain transaction failed",
				zap.String("txid", txid),
				zap.Error(err))
		}
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}

	metrics.ObserveExplain(metrics.ExplainOK, started)
	writeJSON(w, http.StatusOK, summary)
}

type sampleResponse struct {
	TxIDs []string `json:"txids"`
}

// SampleTxIDs handles GET /api/mempool/sample.
func (h *ExplainerHandler) SampleTxIDs(w http.ResponseWriter, r *http.Request) {
	txids, err := h.svc.SampleTxIDs(r.Context())
	if err != nil {
		h.logger.Error("sample txids failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream unavailable"})
		return
	}
	if txids == nil {
		txids = []string{}
	}
	writeJSON(w, http.StatusOK, sampleResponse{TxIDs: txids})
}

// Health handles GET /healthz.
func (h *ExplainerHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func classifyError(err error) (outcome string, status int, msg string) {
	if errors.Is(err, service.ErrInvalidTxID) {
		return metrics.ExplainInvalidTxID, http.StatusBadRequest, err.Error()
	}
	var ue *esplora.UpstreamError
	if errors.As(err, &ue) {
		return metrics.ExplainUpstreamError, http.StatusBadGateway, "upstream unavailable"
	}
	return metrics.ExplainInternalError, http.StatusInternalServerError, "internal error"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
