package report

import (
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

// BillingTotals are the summary cards above a billing tab.
type BillingTotals struct {
	TotalPaid    int64 `json:"total_paid"`
	TotalPending int64 `json:"total_pending"`
}

// FilterBilling keeps the ledger rows of one billing kind.
func FilterBilling(items []school.BillingItem, kind school.BillingKind) []school.BillingItem {
	matched := make([]school.BillingItem, 0, len(items))
	for _, item := range items {
		if item.Kind == kind {
			matched = append(matched, item)
		}
	}
	return matched
}

// BillingSummary totals the given rows into paid and outstanding amounts.
// Amounts were decoded at ingestion (digits only, zero when absent), so a
// hand-typed "Rp 300.000" and a bare "300000" total identically.
func BillingSummary(items []school.BillingItem) BillingTotals {
	var totals BillingTotals
	for _, item := range items {
		if item.Paid {
			totals.TotalPaid += item.Amount
		} else {
			totals.TotalPending += item.Amount
		}
	}
	return totals
}
