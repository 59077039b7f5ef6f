// Package cli provides the command-line interface for rbstub-gen.
package cli

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand(afero.NewOsFs(), os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree on top of fs, writing to the given streams.
func NewRootCommand(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := newGenerateCommand(fs)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}
