package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Width(16)
	focusStyle = lipgloss.NewStyle().Foreground(cli.PrimaryColor).Bold(true)
	errorStyle = cli.ErrorStyle.PaddingLeft(18)
)

// View renders the form.
func (m FormModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("Add Transaction"))
	b.WriteString("\n")

	for field := 0; field < fieldCount; field++ {
		cursor := "  "
		label := labelStyle.Render(fieldLabels[field])
		if field == m.focus {
			cursor = focusStyle.Render("> ")
			label = focusStyle.Inherit(labelStyle).Render(fieldLabels[field])
		}

		var value string
		switch field {
		case fieldType:
			value = renderChoice([]string{string(model.TypeIncome), string(model.TypeExpense)}, string(m.txType))
		case fieldMethod:
			methods := make([]string, len(model.PaymentMethods))
			for i, pm := range model.PaymentMethods {
				methods[i] = string(pm)
			}
			value = renderChoice(methods, string(m.method))
		default:
			value = m.inputs[field].View()
		}

		b.WriteString(cursor + label + value + "\n")
		if msg, ok := m.errs[fieldKeys[field]]; ok {
			b.WriteString(errorStyle.Render(msg) + "\n")
		}
	}

	if preview := m.previewView(); preview != "" {
		b.WriteString("\n" + preview + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeErr {
			b.WriteString(cli.FormatError(m.notice))
		} else {
			b.WriteString(cli.FormatInfo(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.help.View(m.keymap))
	return b.String()
}

func renderChoice(options []string, selected string) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		if opt == selected {
			parts[i] = focusStyle.Render("(•) " + opt)
		} else {
			parts[i] = cli.SubtleStyle.Render("( ) " + opt)
		}
	}
	return strings.Join(parts, "  ")
}

func (m FormModel) previewView() string {
	fee, total, ok := m.feePreview()
	if !ok {
		return ""
	}

	label := "Total Amount Payable:"
	if m.txType == model.TypeIncome {
		label = "Net Amount Receivable:"
	}

	return cli.BoxStyle.Render(strings.Join([]string{
		fmt.Sprintf("Service Fee (%s%%): %s", m.rate, fee),
		fmt.Sprintf("%s %s", label, total.StringFixed(2)),
	}, "\n"))
}
