// Package commands implements the CLI commands for the nodepack tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/nodepack/internal/app"
	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
)

// CLI represents the command line interface for nodepack.
type CLI struct {
	app     *app.App
	loader  ports.ConfigLoader
	rootCmd *cobra.Command
}

// New creates a new CLI instance from the wired components.
func New(c *app.Components) *CLI {
	cli := &CLI{
		app:    c.App,
		loader: c.ConfigLoader,
	}

	rootCmd := &cobra.Command{
		Use:           "nodepack [flags] <entry-file>",
		Short:         "Package a Node.js program into standalone binaries",
		Long:          "nodepack bundles a program's sources into one script and wraps it with a runtime snapshot to produce platform-specific executables.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.runRoot,
	}

	rootCmd.Flags().StringP("out", "o", "", "output path or basename (default \""+domain.DefaultOutFile+"\")")
	rootCmd.Flags().StringP("target", "t", "", "Node.js runtime version token (default \""+domain.DefaultNodeVersion+"\")")
	rootCmd.Flags().StringP("platform", "p", "", "one of win|macos|linux|alpine|all (default: current OS)")
	rootCmd.Flags().StringArrayP("assets", "a", nil, "asset file or directory to embed; repeatable")

	cli.rootCmd = rootCmd
	rootCmd.AddCommand(cli.newVersionCmd())
	rootCmd.AddCommand(cli.newCleanCmd())

	return cli
}

// runRoot resolves the compile options from the project file, the flags and
// the positional entry argument, then runs the pipeline. Flags override
// project file defaults; the last bare argument wins as entry point.
func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && cmd.Flags().NFlag() == 0 {
		// Bare invocation shows usage without attempting a build.
		return cmd.Help()
	}

	opts, err := c.loader.Load(".")
	if err != nil {
		return err
	}

	if len(args) > 0 {
		opts.EntryPoint = args[len(args)-1]
	}
	if v, _ := cmd.Flags().GetString("out"); cmd.Flags().Changed("out") {
		opts.OutFile = v
	}
	if v, _ := cmd.Flags().GetString("target"); cmd.Flags().Changed("target") {
		opts.NodeVersion = v
	}
	if v, _ := cmd.Flags().GetString("platform"); cmd.Flags().Changed("platform") {
		opts.Platform = v
	}
	if v, _ := cmd.Flags().GetStringArray("assets"); cmd.Flags().Changed("assets") {
		opts.Assets = append(opts.Assets, v...)
	}

	return c.app.Compile(cmd.Context(), opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
