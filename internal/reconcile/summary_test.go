package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaguedesk/league-dues/internal/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name            string
		rows            []SummaryRow
		wantOutstanding string
		wantPaid        string
		wantPending     int
		wantOverdue     int
	}{
		{
			name:            "empty input gives the zero summary",
			rows:            nil,
			wantOutstanding: "0",
			wantPaid:        "0",
		},
		{
			name: "mixed statuses",
			rows: []SummaryRow{
				{AmountOutstanding: dec("50"), AmountPaid: dec("100"), Status: models.StatusPartial},
				{AmountOutstanding: dec("100"), AmountPaid: dec("0"), Status: models.StatusPending},
				{AmountOutstanding: dec("0"), AmountPaid: dec("200"), Status: models.StatusPaid},
				{AmountOutstanding: dec("75"), AmountPaid: dec("25"), Status: models.StatusOverdue},
			},
			wantOutstanding: "225",
			wantPaid:        "325",
			wantPending:     2,
			wantOverdue:     1,
		},
		{
			name: "unrecognized status contributes to sums only",
			rows: []SummaryRow{
				{AmountOutstanding: dec("10"), AmountPaid: dec("5"), Status: models.PaymentStatus("REFUNDED")},
			},
			wantOutstanding: "10",
			wantPaid:        "5",
		},
		{
			name: "paid rows count toward neither tally",
			rows: []SummaryRow{
				{AmountOutstanding: dec("0"), AmountPaid: dec("80"), Status: models.StatusPaid},
				{AmountOutstanding: dec("0"), AmountPaid: dec("120"), Status: models.StatusPaid},
			},
			wantOutstanding: "0",
			wantPaid:        "200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.rows)
			assertDecEqual(t, tt.wantOutstanding, got.TotalOutstanding)
			assertDecEqual(t, tt.wantPaid, got.TotalPaid)
			assert.Equal(t, tt.wantPending, got.PendingCount)
			assert.Equal(t, tt.wantOverdue, got.OverdueCount)
		})
	}
}

func TestSummarizeViews(t *testing.T) {
	views := []models.PaymentView{
		{AmountOutstanding: dec("30"), AmountPaid: dec("20"), Status: models.StatusPartial},
		{AmountOutstanding: dec("50"), AmountPaid: dec("0"), Status: models.StatusOverdue},
	}

	got := SummarizeViews(views)

	assertDecEqual(t, "80", got.TotalOutstanding)
	assertDecEqual(t, "20", got.TotalPaid)
	assert.Equal(t, 1, got.PendingCount)
	assert.Equal(t, 1, got.OverdueCount)
}
