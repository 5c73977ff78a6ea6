package commands

import (
	"fmt"
	"time"

	"github.com/risk-digest/risk-digest/pkg/runtime/terminal/export"
	digestsvc "github.com/risk-digest/risk-digest/pkg/services/digest"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
	"github.com/spf13/cobra"
)

// NewGenerateCmd produces the digest for a date, skipping dates that
// already have one, and prints the result.
func NewGenerateCmd(reporter *export.Reporter) *cobra.Command {
	var (
		date string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the digest for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			store, err := digeststore.NewStore(dir)
			if err != nil {
				return err
			}
			generator := digestsvc.NewGenerator(store)

			digest, created, err := generator.Generate(ctx, date)
			if err != nil {
				return fmt.Errorf("failed to generate digest: %w", err)
			}
			if !created {
				cmd.Printf("Digest for %s already exists\n", date)
			}

			return reporter.Handle(digest)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Digest date in YYYY-MM-DD format (default: today)")
	cmd.Flags().StringVar(&dir, "dir", "data/digests", "Directory holding the digest archive")

	return cmd
}
