package handlers

import "courier-dispatch/internal/domain"

func (req createOrderRequest) toModel() domain.NewOrderInput {
	return domain.NewOrderInput{
		CustomerID:      req.CustomerID,
		AdminID:         req.AdminID,
		BillNumber:      req.BillNumber,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
	}
}

func summaryToResponse(s domain.OrderSummary) orderSummaryDTO {
	return orderSummaryDTO{
		ID:              s.ID,
		BillNumber:      s.BillNumber,
		PickupAddress:   s.PickupAddress,
		DeliveryAddress: s.DeliveryAddress,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		CustomerName:    s.CustomerName,
		CustomerEmail:   s.CustomerEmail,
		AdminName:       s.AdminName,
	}
}

func summariesToResponse(list []domain.OrderSummary) []orderSummaryDTO {
	out := make([]orderSummaryDTO, 0, len(list))
	for _, s := range list {
		out = append(out, summaryToResponse(s))
	}
	return out
}

func refsToResponse(list []domain.UserRef) []userRefDTO {
	out := make([]userRefDTO, 0, len(list))
	for _, u := range list {
		out = append(out, userRefDTO{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}

func logsToResponse(logs domain.OrderLogs) orderLogsDTO {
	history := make([]historyEntryDTO, 0, len(logs.History))
	for _, e := range logs.History {
		var old *string
		if e.OldStatus != nil {
			s := string(*e.OldStatus)
			old = &s
		}
		history = append(history, historyEntryDTO{
			ID:        e.ID,
			OrderID:   e.OrderID,
			OldStatus: old,
			NewStatus: string(e.NewStatus),
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt,
		})
	}

	audit := make([]auditEntryDTO, 0, len(logs.Audit))
	for _, e := range logs.Audit {
		audit = append(audit, auditEntryDTO{
			ID:        e.ID,
			OrderID:   e.OrderID,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}

	return orderLogsDTO{History: history, Audit: audit}
}

func joinRowsToResponse(rows []domain.JoinReportRow) []joinReportRowDTO {
	out := make([]joinReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, joinReportRowDTO{
			OrderID:       r.OrderID,
			BillNumber:    r.BillNumber,
			Status:        string(r.Status),
			CreatedAt:     r.CreatedAt,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			AdminName:     r.AdminName,
		})
	}
	return out
}

func membershipRowsToResponse(rows []domain.MembershipReportRow) []membershipReportRowDTO {
	out := make([]membershipReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, membershipReportRowDTO{UserID: r.UserID, Name: r.Name, Email: r.Email})
	}
	return out
}

func aggregateRowsToResponse(rows []domain.AggregateReportRow) []aggregateReportRowDTO {
	out := make([]aggregateReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, aggregateReportRowDTO{
			Status:            string(r.Status),
			OrderCount:        r.OrderCount,
			DistinctCustomers: r.DistinctCustomers,
			FirstCreatedAt:    r.FirstCreatedAt,
			LastCreatedAt:     r.LastCreatedAt,
		})
	}
	return out
}

func adminPerformanceRowsToResponse(rows []domain.AdminPerformanceRow) []adminPerformanceRowDTO {
	out := make([]adminPerformanceRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, adminPerformanceRowDTO{
			AdminID:   r.AdminID,
			AdminName: r.AdminName,
			Total:     r.Total,
			Delivered: r.Delivered,
			InTransit: r.InTransit,
			Pending:   r.Pending,
		})
	}
	return out
}

func customerActivityRowsToResponse(rows []domain.CustomerActivityRow) []customerActivityRowDTO {
	out := make([]customerActivityRowDTO, 0, len(rows))
	for _, r := range rows {
		statuses := r.Statuses
		if statuses == nil {
			statuses = []string{}
		}
		out = append(out, customerActivityRowDTO{
			UserID:   r.UserID,
			Name:     r.Name,
			Total:    r.Total,
			Statuses: statuses,
		})
	}
	return out
}
