package handlers

import (
	"net/http"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// DispatchHandler serves the courier command/query endpoints.
type DispatchHandler struct {
	logger logx.Logger
	uc     dispatchUsecase
}

// NewDispatchHandler wires a dispatchUsecase into HTTP handlers.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	return &DispatchHandler{logger: logger, uc: uc}
}

// Create handles POST /couriers/add.
func (h *DispatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusCreated, "courier order created", map[string]int64{"id": id})
}

// UpdateStatus handles PUT /couriers/update-status/{id}.
func (h *DispatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	u := domain.StatusUpdate{
		OrderID:   id,
		NewStatus: domain.OrderStatus(req.NewStatus),
		ChangedBy: req.ChangedByAdminEmail,
	}
	if err := h.uc.UpdateStatus(r.Context(), u); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "status updated", map[string]any{
		"id":         id,
		"new_status": req.NewStatus,
	})
}

// GetStatus handles GET /couriers/status/{id}.
func (h *DispatchHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	status, err := h.uc.GetStatus(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", map[string]any{
		"id":     id,
		"status": string(status),
	})
}

// Logs handles GET /couriers/{id}/logs. Empty log sequences are a success,
// not a 404.
func (h *DispatchHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	logs, err := h.uc.Logs(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", logsToResponse(logs))
}

// List handles GET /couriers.
func (h *DispatchHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListOrders(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", summariesToResponse(list))
}

// ListUsers handles GET /couriers/data/users.
func (h *DispatchHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListUsers(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", refsToResponse(list))
}

// ListAdmins handles GET /couriers/data/admins.
func (h *DispatchHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListAdmins(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "", refsToResponse(list))
}

// Delete handles DELETE /couriers/{id}.
func (h *DispatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.uc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeSuccess(h.logger, w, r, http.StatusOK, "courier order deleted", map[string]deletedOrderDTO{
		"deleted": {ID: deleted.ID, BillNumber: deleted.BillNumber},
	})
}
