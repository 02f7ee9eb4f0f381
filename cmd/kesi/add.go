package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/Veraticus/kesi-ledger/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Long: `Record a transaction. The current service fee rate is applied and stored
with the transaction; later rate changes do not alter it.

Use --interactive for a form with a live fee preview and category suggestions.`,
		Example: `  kesi add --description "Rice" --amount 500 --type expense --category Food \
    --name "Daw Hla" --phone 0912345678 --method WaveMoney
  kesi add -i`,
		RunE: runAdd,
	}

	cmd.Flags().BoolP("interactive", "i", false, "use the interactive form")
	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().String("description", "", "what the transaction was for")
	cmd.Flags().String("amount", "", "amount, positive")
	cmd.Flags().String("type", string(model.TypeExpense), "income or expense")
	cmd.Flags().String("category", "", "category")
	cmd.Flags().String("name", "", "payer or payee name")
	cmd.Flags().String("phone", "", "payer or payee phone number")
	cmd.Flags().String("method", string(model.MethodKPay), "payment method (KPay or WaveMoney)")
	cmd.Flags().Bool("suggest", false, "suggest a category when --category is empty")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	rate := a.store.LoadFeeRate(ctx)

	var draft model.Draft
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		suggester, suggestErr := createSuggester()
		if suggestErr != nil {
			slog.Debug("category suggestion unavailable", "error", suggestErr)
		}

		entry, formErr := tui.RunForm(tui.FormConfig{
			Context:   ctx,
			Suggester: suggester,
			LoadRate:  a.store.LoadFeeRate,
			Rate:      rate,
		}, tui.RunOptions{Subscribe: a.store.OnFeeRateChange})
		if errors.Is(formErr, tui.ErrCancelled) {
			fmt.Fprintln(out, cli.FormatInfo("Cancelled."))
			return nil
		}
		if formErr != nil {
			return formErr
		}
		// Store the fee the form previewed.
		draft, rate = entry.Draft, entry.Rate
	} else {
		draft, err = draftFromFlags(cmd)
		if err != nil {
			return err
		}

		if suggest, _ := cmd.Flags().GetBool("suggest"); suggest && draft.Category == "" {
			draft.Category = suggestCategory(cmd, draft.Description)
		}
	}

	l := a.store.LoadLedger(ctx)
	txn, err := l.Add(draft, rate)
	if err != nil {
		for _, fe := range model.FieldErrors(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(fmt.Sprintf("%s: %s", fe.Field, fe.Message)))
		}
		return fmt.Errorf("transaction not recorded: %w", err)
	}

	if err := a.store.SaveLedger(ctx, l); err != nil {
		return err
	}

	label := "Expense"
	if txn.Type == model.TypeIncome {
		label = "Income"
	}
	fmt.Fprintln(out, cli.FormatSuccess(label+" added successfully."))
	if txn.ServiceFee.Present() {
		fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("Service fee (%s%%): %s", rate, txn.ServiceFee)))
	}

	return nil
}

// suggestCategory asks the configured suggester for a category. Failure is
// reported and leaves the category empty.
func suggestCategory(cmd *cobra.Command, description string) string {
	suggester, err := createSuggester()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("Category suggestion is not configured: "+err.Error()))
		return ""
	}

	category, err := suggester.Suggest(cmd.Context(), description)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(common.UserMessage(err)))
		return ""
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Suggested category: "+category))
	return category
}

func draftFromFlags(cmd *cobra.Command) (model.Draft, error) {
	flags := cmd.Flags()
	get := func(name string) string {
		v, _ := flags.GetString(name)
		return strings.TrimSpace(v)
	}

	draft := model.Draft{
		Description: get("description"),
		Category:    get("category"),
		Name:        get("name"),
		PhoneNumber: get("phone"),
	}

	if s := get("date"); s != "" {
		date, err := parseDate(s)
		if err != nil {
			return model.Draft{}, err
		}
		draft.Date = date
	} else {
		draft.Date = time.Now()
	}

	if s := get("amount"); s != "" {
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return model.Draft{}, fmt.Errorf("invalid amount %q: %w", s, model.ErrInvalidDraft)
		}
		draft.Amount = amount
	}

	txType, err := model.ParseTransactionType(get("type"))
	if err != nil {
		return model.Draft{}, err
	}
	draft.Type = txType

	method, err := model.ParsePaymentMethod(get("method"))
	if err != nil {
		return model.Draft{}, err
	}
	draft.PaymentMethod = method

	return draft, nil
}
