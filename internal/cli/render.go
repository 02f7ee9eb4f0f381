package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderTransactions lays transactions out as an aligned table.
func RenderTransactions(txns []model.Transaction) string {
	if len(txns) == 0 {
		return SubtleStyle.Render("No transactions recorded yet.")
	}

	header := []string{"Date", "Type", "Description", "Category", "Name", "Method", "Amount", "Fee"}
	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []string{
			t.Day().Format(time.DateOnly),
			string(t.Type),
			t.Description,
			t.Category,
			t.Name,
			string(t.PaymentMethod),
			t.Amount.StringFixed(2),
			t.ServiceFee.String(),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(joinCells(header, widths)))
	b.WriteString("\n")
	for i, row := range rows {
		line := joinCells(row, widths)
		if txns[i].Type == model.TypeIncome {
			line = IncomeStyle.Render(line)
		} else {
			line = ExpenseStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// joinCells pads cells to widths. The last two columns are right aligned.
func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		if i >= len(cells)-2 {
			parts[i] = pad + cell
		} else {
			parts[i] = cell + pad
		}
	}
	return strings.Join(parts, "  ")
}

// RenderTotals renders the balance summary.
func RenderTotals(totals ledger.Totals) string {
	lines := []string{
		fmt.Sprintf("Net Income:     %s", IncomeStyle.Render(totals.NetIncome.StringFixed(2))),
		fmt.Sprintf("Total Expenses: %s", ExpenseStyle.Render(totals.EffectiveExpenses.StringFixed(2))),
	}

	balance := totals.Balance.StringFixed(2)
	if totals.Balance.IsNegative() {
		balance = ExpenseStyle.Render(balance)
	} else {
		balance = IncomeStyle.Render(balance)
	}
	lines = append(lines, fmt.Sprintf("Balance:        %s", balance))

	return RenderBox("Balance Summary", strings.Join(lines, "\n"))
}
