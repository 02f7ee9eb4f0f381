package tui

import (
	"errors"
	"fmt"

	"github.com/Veraticus/kesi-ledger/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves the form without submitting.
var ErrCancelled = errors.New("transaction entry cancelled")

// RunOptions configures RunForm.
type RunOptions struct {
	// Subscribe registers for fee rate changes and returns an unsubscribe
	// function. It may be nil.
	Subscribe func(func(model.FeeRate)) func()
	// ProgramOptions are passed to tea.NewProgram.
	ProgramOptions []tea.ProgramOption
}

// Entry is a submitted form: the draft and the fee rate its preview showed.
type Entry struct {
	Draft model.Draft
	Rate  model.FeeRate
}

// RunForm shows the form and blocks until it is submitted or cancelled.
func RunForm(cfg FormConfig, opts RunOptions) (Entry, error) {
	programOpts := opts.ProgramOptions
	if cfg.Context != nil {
		programOpts = append(programOpts, tea.WithContext(cfg.Context))
	}

	p := tea.NewProgram(NewForm(cfg), programOpts...)

	if opts.Subscribe != nil {
		unsubscribe := opts.Subscribe(func(rate model.FeeRate) {
			p.Send(FeeRateChanged(rate))
		})
		defer unsubscribe()
	}

	final, err := p.Run()
	if err != nil {
		return Entry{}, fmt.Errorf("form failed: %w", err)
	}

	form, ok := final.(FormModel)
	if !ok || !form.Submitted() {
		return Entry{}, ErrCancelled
	}

	return Entry{Draft: form.Draft(), Rate: form.Rate()}, nil
}
