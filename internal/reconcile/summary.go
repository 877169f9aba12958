package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/leaguedesk/league-dues/internal/models"
)

// SummaryRow is the minimal shape the aggregator needs, so callers can feed
// it precomputed rows as well as full payment views.
type SummaryRow struct {
	AmountOutstanding decimal.Decimal
	AmountPaid        decimal.Decimal
	Status            models.PaymentStatus
}

// Summarize reduces rows into dashboard totals. Outstanding and paid amounts
// sum over every row regardless of status; Pending and Partial rows count as
// pending, Overdue rows as overdue, and anything else (including Paid) counts
// toward neither.
func Summarize(rows []SummaryRow) models.PaymentSummary {
	summary := models.PaymentSummary{
		TotalOutstanding: decimal.Zero,
		TotalPaid:        decimal.Zero,
	}
	for _, row := range rows {
		summary.TotalOutstanding = summary.TotalOutstanding.Add(row.AmountOutstanding)
		summary.TotalPaid = summary.TotalPaid.Add(row.AmountPaid)
		switch row.Status {
		case models.StatusPending, models.StatusPartial:
			summary.PendingCount++
		case models.StatusOverdue:
			summary.OverdueCount++
		}
	}
	return summary
}

// SummarizeViews aggregates a reconciliation result.
func SummarizeViews(views []models.PaymentView) models.PaymentSummary {
	rows := make([]SummaryRow, len(views))
	for i, v := range views {
		rows[i] = SummaryRow{
			AmountOutstanding: v.AmountOutstanding,
			AmountPaid:        v.AmountPaid,
			Status:            v.Status,
		}
	}
	return Summarize(rows)
}
