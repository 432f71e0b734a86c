package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/errhandler"
	"agenkas/internal/service"
	"agenkas/internal/ui/prompts"
	"agenkas/internal/utils"
)

func NewBalanceCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show or set the initial balances",
		Long: `The initial cash and ATM custody balances are the starting point of the
	derivation. Changing them retroactively shifts every derived total.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalanceShow(svc)
		},
	}

	cmd.AddCommand(newBalanceSetCmd(svc))

	return cmd
}

func runBalanceShow(svc *service.Service) error {
	bal, err := svc.Ledger.InitialBalances()
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("Initial Balances")

	tableData := pterm.TableData{
		{"Initial Cash", utils.FormatRupiah(bal.Cash)},
		{"Initial ATM Custody", utils.FormatRupiah(bal.ATM)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func newBalanceSetCmd(svc *service.Service) *cobra.Command {
	var cashFlag, atmFlag int64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the initial balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			cash, atm := cashFlag, atmFlag

			if !cmd.Flags().Changed("cash") && !cmd.Flags().Changed("atm") {
				current, err := svc.Ledger.InitialBalances()
				if err != nil {
					return err
				}

				bal, err := prompts.PromptInitialBalances(current)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
				cash, atm = bal.Cash, bal.ATM
			}

			if err := svc.Ledger.SetInitialBalances(cash, atm); err != nil {
				return err
			}

			pterm.Success.Printf("Initial balances set: cash %s, ATM %s\n",
				utils.FormatRupiah(cash), utils.FormatRupiah(atm))
			return nil
		},
	}

	cmd.Flags().Int64Var(&cashFlag, "cash", 0, "Initial cash balance in whole rupiah")
	cmd.Flags().Int64Var(&atmFlag, "atm", 0, "Initial ATM custody balance in whole rupiah")

	return cmd
}
