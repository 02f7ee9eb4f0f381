// Package tui implements the interactive transaction entry form.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/Veraticus/kesi-ledger/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// Field order on screen.
const (
	fieldDate = iota
	fieldDescription
	fieldAmount
	fieldType
	fieldCategory
	fieldName
	fieldPhone
	fieldMethod
	fieldCount
)

// fieldKeys maps screen fields to the names used by model.FieldError.
var fieldKeys = [fieldCount]string{
	fieldDate:        "date",
	fieldDescription: "description",
	fieldAmount:      "amount",
	fieldType:        "type",
	fieldCategory:    "category",
	fieldName:        "name",
	fieldPhone:       "phoneNumber",
	fieldMethod:      "paymentMethod",
}

var fieldLabels = [fieldCount]string{
	fieldDate:        "Date",
	fieldDescription: "Description",
	fieldAmount:      "Amount",
	fieldType:        "Type",
	fieldCategory:    "Category",
	fieldName:        "Name",
	fieldPhone:       "Phone Number",
	fieldMethod:      "Payment Method",
}

// FormConfig configures a new form.
type FormConfig struct {
	Context   context.Context
	Suggester service.CategorySuggester
	Now       func() time.Time
	// LoadRate reads the stored fee rate. When set, the form re-reads it on
	// open and after every amount edit.
	LoadRate func(context.Context) model.FeeRate
	Rate     model.FeeRate
}

// FormModel is the bubbletea model of the add-transaction form.
type FormModel struct {
	ctx        context.Context
	suggester  service.CategorySuggester
	loadRate   func(context.Context) model.FeeRate
	errs       map[string]string
	keymap     KeyMap
	help       help.Model
	notice     string
	rate       model.FeeRate
	inputs     [fieldCount]textinput.Model
	draft      model.Draft
	txType     model.TransactionType
	method     model.PaymentMethod
	focus      int
	width      int
	noticeErr  bool
	suggesting bool
	submitted  bool
	cancelled  bool
}

// NewForm creates a form with today's date, expense and KPay preselected.
func NewForm(cfg FormConfig) FormModel {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	m := FormModel{
		ctx:       cfg.Context,
		suggester: cfg.Suggester,
		loadRate:  cfg.LoadRate,
		rate:      cfg.Rate,
		errs:      make(map[string]string),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		txType:    model.TypeExpense,
		method:    model.MethodKPay,
	}

	placeholders := map[int]string{
		fieldDate:        "YYYY-MM-DD",
		fieldDescription: "e.g. Groceries at market",
		fieldAmount:      "0.00",
		fieldCategory:    "e.g. Food (Ctrl+G to suggest)",
		fieldName:        "Payer or payee",
		fieldPhone:       "09xxxxxxxxx",
	}
	for field, placeholder := range placeholders {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 100
		m.inputs[field] = ti
	}
	m.inputs[fieldDate].SetValue(cfg.Now().Format(time.DateOnly))

	m.setFocus(fieldDescription)
	return m
}

func isTextField(field int) bool {
	return field != fieldType && field != fieldMethod
}

func (m *FormModel) setFocus(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if !isTextField(i) {
			continue
		}
		if i == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// Init initializes the model.
func (m FormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refreshRate())
}

// refreshRate re-reads the stored fee rate, or returns nil when the form has
// no rate source.
func (m FormModel) refreshRate() tea.Cmd {
	if m.loadRate == nil {
		return nil
	}
	return loadRateCmd(m.ctx, m.loadRate)
}

// Update handles messages and updates the model.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case feeRateMsg:
		m.rate = msg.rate
		return m, nil

	case suggestionMsg:
		m.suggesting = false
		if msg.err != nil {
			m.setNotice(common.UserMessage(msg.err), true)
			return m, nil
		}
		m.inputs[fieldCategory].SetValue(msg.category)
		delete(m.errs, fieldKeys[fieldCategory])
		m.setNotice("Suggested category: "+msg.category, false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		draft, err := m.buildDraft()
		if err != nil {
			m.setNotice("Please fix the highlighted fields.", true)
			return m, nil
		}
		m.draft = draft
		m.submitted = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Suggest):
		return m.requestSuggestion()

	case key.Matches(msg, m.keymap.Next):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd

	case key.Matches(msg, m.keymap.Prev):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	if !isTextField(m.focus) {
		if key.Matches(msg, m.keymap.Toggle) {
			m.toggle()
		}
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	delete(m.errs, fieldKeys[m.focus])
	if m.focus == fieldAmount && m.inputs[fieldAmount].Value() != before {
		cmd = tea.Batch(cmd, m.refreshRate())
	}
	return m, cmd
}

func (m *FormModel) toggle() {
	switch m.focus {
	case fieldType:
		if m.txType == model.TypeIncome {
			m.txType = model.TypeExpense
		} else {
			m.txType = model.TypeIncome
		}
	case fieldMethod:
		if m.method == model.MethodKPay {
			m.method = model.MethodWaveMoney
		} else {
			m.method = model.MethodKPay
		}
	}
}

func (m FormModel) requestSuggestion() (tea.Model, tea.Cmd) {
	if m.suggesting {
		return m, nil
	}
	description := strings.TrimSpace(m.inputs[fieldDescription].Value())
	if description == "" {
		m.setNotice("Please enter a description first.", true)
		return m, nil
	}
	if m.suggester == nil {
		m.setNotice("Category suggestion is not configured.", true)
		return m, nil
	}
	m.suggesting = true
	m.setNotice("Suggesting a category...", false)
	return m, suggestCmd(m.ctx, m.suggester, description)
}

func (m *FormModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// buildDraft collects the inputs into a Draft and validates it, recording
// per-field messages on failure.
func (m *FormModel) buildDraft() (model.Draft, error) {
	draft := model.Draft{
		Description:   strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Type:          m.txType,
		Category:      strings.TrimSpace(m.inputs[fieldCategory].Value()),
		Name:          strings.TrimSpace(m.inputs[fieldName].Value()),
		PhoneNumber:   strings.TrimSpace(m.inputs[fieldPhone].Value()),
		PaymentMethod: m.method,
	}

	dateText := strings.TrimSpace(m.inputs[fieldDate].Value())
	dateErr := false
	if dateText != "" {
		date, err := time.ParseInLocation(time.DateOnly, dateText, time.Local)
		if err == nil {
			draft.Date = date
		} else {
			dateErr = true
		}
	}

	if amount, err := decimal.NewFromString(strings.TrimSpace(m.inputs[fieldAmount].Value())); err == nil {
		draft.Amount = amount
	}

	m.errs = make(map[string]string)
	err := draft.Validate()
	for _, fe := range model.FieldErrors(err) {
		m.errs[fe.Field] = fe.Message
	}
	if dateErr {
		m.errs[fieldKeys[fieldDate]] = "Use the YYYY-MM-DD format."
	}

	return draft, err
}

// feePreview returns the fee the entry will carry and its net effect, or
// false when there is no fee to show.
func (m FormModel) feePreview() (model.ServiceFee, decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(m.inputs[fieldAmount].Value()))
	if err != nil || !amount.IsPositive() {
		return model.NoFee(), decimal.Zero, false
	}

	fee := ledger.ComputeFee(amount, m.rate)
	if !fee.Present() {
		return fee, amount, false
	}

	return fee, ledger.EffectiveAmount(model.Transaction{Type: m.txType, Amount: amount, ServiceFee: fee}), true
}

// Submitted reports whether the form closed with a valid draft.
func (m FormModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user left the form without submitting.
func (m FormModel) Cancelled() bool {
	return m.cancelled
}

// Draft returns the submitted draft.
func (m FormModel) Draft() model.Draft {
	return m.draft
}

// Rate returns the fee rate behind the current preview.
func (m FormModel) Rate() model.FeeRate {
	return m.rate
}
