// Package billing computes document totals and renders monetary amounts
// for printable billing documents.
package billing

import (
	"fmt"

	"github.com/mkadiri/dentassist-api/internal/model"
)

// DefaultConsultationFee is billed when a document is generated with no
// treatments selected. An explicit fallback, not error recovery.
const DefaultConsultationFee int64 = 100

// Total sums the costs of the selected treatments. An empty selection
// yields the default consultation fee.
func Total(treatments []*model.Treatment) int64 {
	if len(treatments) == 0 {
		return DefaultConsultationFee
	}

	var total int64
	for _, t := range treatments {
		total += t.Cost
	}
	return total
}

// AmountInFigures formats an amount as it appears in the document's
// numeric field, e.g. "150,00 €".
func AmountInFigures(amount int64, symbol string) string {
	return fmt.Sprintf("%d,00 %s", amount, symbol)
}
