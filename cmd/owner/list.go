package owner

import (
	"github.com/spf13/cobra"

	"agenkas/internal/service"
	"agenkas/internal/ui/views"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List owner capital entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			owners, err := svc.Owner.List()
			if err != nil {
				return err
			}

			return views.RenderOwnerList(owners)
		},
	}
}
