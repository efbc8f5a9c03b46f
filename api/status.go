package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"log/slog"

	"github.com/masaslabs/customer-console/pkg/repository"
	"github.com/qri-io/jsonschema"
)

//go:embed status_schema.json
var statusSchemaJSON []byte

type StatusHandler struct {
	statusRepo repository.StatusRepo
	schema     *jsonschema.Schema
}

func NewStatusHandler(sr repository.StatusRepo) (*StatusHandler, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(statusSchemaJSON, rs); err != nil {
		return nil, fmt.Errorf("compile status schema: %w", err)
	}
	return &StatusHandler{statusRepo: sr, schema: rs}, nil
}

type statusRequest struct {
	CustomerID int64   `json:"customer_id"`
	Status     string  `json:"status"`
	Comment    *string `json:"comment,omitempty"`
}

// UpdateStatus handles POST /v1/customers/status. Required fields are checked
// here, before any store access; the repository does not re-validate.
func (h *StatusHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	verrs, err := h.schema.ValidateBytes(r.Context(), body)
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, ve := range verrs {
			msgs = append(msgs, ve.Error())
		}
		http.Error(w, "missing required fields: "+strings.Join(msgs, "; "), http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	req.Status = strings.TrimSpace(req.Status)
	if req.CustomerID <= 0 || req.Status == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	if err := h.statusRepo.UpsertCustomerStatus(r.Context(), req.CustomerID, req.Status, req.Comment); err != nil {
		logger.Error("upsert customer status", slog.Any("err", err), slog.Int64("customer_id", req.CustomerID))
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"success": true}, http.StatusOK)
}
