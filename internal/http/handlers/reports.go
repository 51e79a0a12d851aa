package handlers

import (
	"net/http"

	"courier-dispatch/internal/logx"
)

// ReportsHandler serves the read-only reporting endpoints.
type ReportsHandler struct {
	logger logx.Logger
	uc     reportsUsecase
}

// NewReportsHandler wires a reportsUsecase into HTTP handlers.
func NewReportsHandler(logger logx.Logger, uc reportsUsecase) *ReportsHandler {
	return &ReportsHandler{logger: logger, uc: uc}
}

// Join handles GET /reports/join.
func (h *ReportsHandler) Join(w http.ResponseWriter, r *http.Request) {
	label, rows, err := h.uc.Join(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, label, joinRowsToResponse(rows))
}

// Membership handles GET /reports/nested.
func (h *ReportsHandler) Membership(w http.ResponseWriter, r *http.Request) {
	label, rows, err := h.uc.Membership(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, label, membershipRowsToResponse(rows))
}

// Aggregate handles GET /reports/aggregate.
func (h *ReportsHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	label, rows, err := h.uc.Aggregate(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, label, aggregateRowsToResponse(rows))
}

// AdminPerformance handles GET /reports/admin-performance.
func (h *ReportsHandler) AdminPerformance(w http.ResponseWriter, r *http.Request) {
	label, rows, err := h.uc.AdminPerformance(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, label, adminPerformanceRowsToResponse(rows))
}

// CustomerActivity handles GET /reports/customer-activity.
func (h *ReportsHandler) CustomerActivity(w http.ResponseWriter, r *http.Request) {
	label, rows, err := h.uc.CustomerActivity(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, label, customerActivityRowsToResponse(rows))
}
