package cmd

import (
	"github.com/spf13/cobra"

	"agenkas/internal/service"
	"agenkas/internal/ui/views"
)

type dashboardRunner struct {
	svc *service.Service
}

func NewDashboardCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the derived balance overview",
		Long:    `Replay the full transaction history and show the derived cash, ATM custody, total, accrued profit, and outstanding debt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &dashboardRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *dashboardRunner) Run() error {
	snap, err := r.svc.Ledger.Snapshot()
	if err != nil {
		return err
	}

	lastUpdate, err := r.svc.Ledger.LastUpdatedAt()
	if err != nil {
		lastUpdate = "-"
	}

	return views.RenderDashboard(snap, lastUpdate)
}
