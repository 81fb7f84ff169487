// Package export computes report rows handed to external file formatters.
// Formatters receive finished strings plus nothing else: they cannot reach
// back into the ledger.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MoneyManage/MoneyManage/internal/model"
)

// Header is the column set of a transaction report.
var Header = []string{"Date", "Type", "Amount", "Category", "Note", "Wallet", "Destination", "With"}

// LookupFunc resolves an id to a display name.
type LookupFunc func(id string) string

// TransactionRows renders transactions into report rows using the supplied
// name lookups. Unresolvable categories render as the fallback name.
func TransactionRows(txns []model.Transaction, categoryName, walletName LookupFunc) [][]string {
	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []string{
			t.Date.String(),
			string(t.Type),
			fmt.Sprintf("%.2f", t.Amount),
			categoryName(t.CategoryID),
			t.Note,
			walletName(t.WalletID),
			walletName(t.DestinationWalletID),
			t.WithPerson,
		})
	}
	return rows
}

// CategoryLookup builds a LookupFunc over a category forest. Transfer rows
// have no category; dangling ids resolve to the fallback name.
func CategoryLookup(cats *model.AllCategories) LookupFunc {
	return func(id string) string {
		if id == "" || id == model.CategoryTransfer {
			return ""
		}
		if cat, ok := cats.Find(id); ok {
			return cat.Name
		}
		return model.FallbackCategory.Name
	}
}

// CSVExporter writes rows as CSV to an io.Writer. It implements
// service.Exporter.
type CSVExporter struct {
	W io.Writer
}

// Export writes the header then every row.
func (e CSVExporter) Export(_ context.Context, header []string, rows [][]string) error {
	w := csv.NewWriter(e.W)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
