package terminal

import (
	"io"
	"os"

	"github.com/risk-digest/risk-digest/pkg/runtime/terminal/commands"
	"github.com/risk-digest/risk-digest/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Security digest management tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.reporter))
	cmd.AddCommand(commands.NewListCmd(cli.reporter))

	return cmd
}
