package commands

import (
	"fmt"

	"github.com/risk-digest/risk-digest/pkg/runtime/terminal/export"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
	"github.com/spf13/cobra"
)

// NewListCmd prints the archive index, newest first.
func NewListCmd(reporter *export.Reporter) *cobra.Command {
	var (
		dir   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived digests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := digeststore.NewStore(dir)
			if err != nil {
				return err
			}
			service := digestsvc.NewService(store)

			summaries, err := service.History(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list digests: %w", err)
			}

			return reporter.HandleList(summaries)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "data/digests", "Directory holding the digest archive")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of digests to list (0 = all)")

	return cmd
}
