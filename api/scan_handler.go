package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coreybb/subscan/analysis"
	"github.com/coreybb/subscan/models"
	"github.com/coreybb/subscan/webutil"
)

// ScanHandler analyzes caller-supplied email messages and returns the
// resulting subscription records and spending summary.
type ScanHandler struct {
	builder *analysis.Builder
}

func NewScanHandler(builder *analysis.Builder) *ScanHandler {
	return &ScanHandler{builder: builder}
}

type scanRequest struct {
	Messages []models.EmailMessage `json:"messages"`
}

type scanResponse struct {
	ScanID        string                `json:"scan_id"`
	Subscriptions []models.Subscription `json:"subscriptions"`
	Summary       models.Summary        `json:"summary"`
}

// HandleCreateScan handles POST /api/scans.
func (h *ScanHandler) HandleCreateScan(w http.ResponseWriter, r *http.Request) error {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return webutil.ErrBadRequestWrap("Invalid request body", err)
	}
	if len(req.Messages) == 0 {
		return webutil.ErrUnprocessableEntity("No messages provided")
	}

	records := h.builder.Build(req.Messages)
	summary := analysis.Summarize(records, time.Now().UTC())

	resp := scanResponse{
		ScanID:        uuid.NewString(),
		Subscriptions: records,
		Summary:       summary,
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
	return nil
}
