package tx

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/constants"
	"agenkas/internal/errhandler"
	"agenkas/internal/service"
	"agenkas/internal/ui/prompts"
	"agenkas/internal/ui/views"
)

type addFlags struct {
	Date   string
	Type   string
	Amount string
	Source string
	IsDebt bool
	Note   string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Record a cash withdrawal, transfer, or expense.

	You can use flags for quick entry or interactive mode for guided input.

	Examples:
	# Interactive mode
	agenkas add

	# Quick mode with flags
	agenkas add --type withdraw --amount 50000 --note "Bu Siti"

	# A transfer held as debt until the customer pays
	agenkas add --type transfer --amount 200000 --debt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: withdraw, transfer, or expense")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount in whole rupiah (e.g. 50000 or 50.000)")
	cmd.Flags().StringVarP(&flags.Source, "source", "s", "", "Expense source pool: cash or atm (expenses only)")
	cmd.Flags().BoolVarP(&flags.IsDebt, "debt", "d", false, "Hold the transaction as unpaid debt")
	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "Optional note")

	return cmd
}

func (r *addRunner) Run() error {
	var input service.TransactionInput
	var err error

	hasFlags := r.cmd.Flags().Changed("type") || r.cmd.Flags().Changed("amount")

	if hasFlags {
		input, err = r.flagsMode()
		if err != nil {
			return err
		}
	} else {
		input, err = prompts.PromptTransactionForm(service.TransactionInput{})
		if err != nil {
			errhandler.HandleError(err)
			return nil
		}
	}

	tx, err := r.svc.Transaction.Create(input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %s)\n", tx.ID)

	return views.RenderTransactionDetail(*tx, r.svc.Transaction.DisplayProfit(*tx))
}

func (r *addRunner) flagsMode() (service.TransactionInput, error) {
	if r.flags.Type == "" || r.flags.Amount == "" {
		return service.TransactionInput{}, fmt.Errorf("when using flags, --type and --amount are both required")
	}

	txType, err := parseTypeArg(r.flags.Type)
	if err != nil {
		return service.TransactionInput{}, err
	}

	amount, err := prompts.ParseAmount(r.flags.Amount)
	if err != nil {
		return service.TransactionInput{}, fmt.Errorf("invalid amount: %w", err)
	}

	source := strings.ToLower(strings.TrimSpace(r.flags.Source))
	if source != "" && source != constants.SourceCash && source != constants.SourceATM {
		return service.TransactionInput{}, fmt.Errorf("invalid source: %s (use cash or atm)", r.flags.Source)
	}

	return service.TransactionInput{
		Date:   r.flags.Date,
		Type:   txType,
		Amount: amount,
		Source: source,
		IsDebt: r.flags.IsDebt,
		Note:   r.flags.Note,
	}, nil
}
