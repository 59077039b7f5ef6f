package cli

import (
	"github.com/example/rbstub-gen/internal/config"
	"github.com/example/rbstub-gen/internal/logger"
	"github.com/example/rbstub-gen/internal/stubgen"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// flags whose explicit values win over the config file
var fileBackedFlags = []string{
	"input", "output", "module", "header",
	"local-only", "public-only", "atomic",
	"log-level", "log-json",
}

func newGenerateCommand(fs afero.Fs) *cobra.Command {
	cfg := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "rbstub-gen [input.json]",
		Short: "Generate Ruby method stubs with RDoc from rustdoc JSON",
		Long: `rbstub-gen reads the JSON output of rustdoc and writes a Ruby module with one
no-op method stub per documented function, carrying the Rust doc comment as RDoc.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only use the positional argument if no input flag was provided
			if len(args) > 0 && !cmd.Flags().Changed("input") {
				if err := cmd.Flags().Set("input", args[0]); err != nil {
					return err
				}
			}

			if configPath != "" {
				keep := make(map[string]bool, len(fileBackedFlags))
				for _, name := range fileBackedFlags {
					keep[name] = cmd.Flags().Changed(name)
				}
				if err := config.LoadFile(fs, &cfg, configPath, keep); err != nil {
					return err
				}
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.NewLogger(&logger.Config{
				Level:  logger.LogLevel(cfg.LogLevel),
				Output: cmd.ErrOrStderr(),
				JSON:   cfg.LogJSON,
			})

			res, err := stubgen.New(fs, cmd.OutOrStdout(), cmd.ErrOrStderr(), log).Run(cfg)
			if err != nil {
				log.Debug("generation failed", "err", err)
				return err
			}
			log.Info("generated stubs", "functions", res.Functions, "output", cfg.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "rustdoc JSON file to read")
	cmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Ruby file to write or '-' for stdout")
	cmd.Flags().StringVarP(&cfg.Module, "module", "m", cfg.Module, "Ruby module wrapping the stubs")
	cmd.Flags().StringVar(&cfg.Header, "header", "", "First line of the generated file (defaults to the auto-generated marker)")
	cmd.Flags().BoolVar(&cfg.LocalOnly, "local-only", false, "Only emit functions of the documented crate (crate_id 0)")
	cmd.Flags().BoolVar(&cfg.PublicOnly, "public-only", false, "Only emit functions with public visibility")
	cmd.Flags().BoolVar(&cfg.Atomic, "atomic", false, "Write to a temporary file and rename it over the output")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&cfg.LogJSON, "log-json", false, "Emit logs as JSON")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to .rbstub.yml config file")

	return cmd
}
