package tui

import (
	"context"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/Veraticus/kesi-ledger/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// suggestionMsg carries the result of an asynchronous category suggestion.
type suggestionMsg struct {
	err      error
	category string
}

// feeRateMsg carries the current persisted fee rate while the form is open.
type feeRateMsg struct {
	rate model.FeeRate
}

// FeeRateChanged builds the message a running program is sent when the fee
// rate setting changes.
func FeeRateChanged(rate model.FeeRate) tea.Msg {
	return feeRateMsg{rate: rate}
}

func loadRateCmd(ctx context.Context, load func(context.Context) model.FeeRate) tea.Cmd {
	return func() tea.Msg {
		return feeRateMsg{rate: load(ctx)}
	}
}

func suggestCmd(ctx context.Context, suggester service.CategorySuggester, description string) tea.Cmd {
	return func() tea.Msg {
		category, err := suggester.Suggest(ctx, description)
		return suggestionMsg{category: category, err: err}
	}
}
