package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spirvkit/spirv-val/internal/adapters/outbound/config"
	"github.com/spirvkit/spirv-val/internal/adapters/outbound/engine"
	"github.com/spirvkit/spirv-val/internal/domain"
)

// ErrValidationFailed is returned when the engine rejects the module. The
// diagnostics have already been printed.
var ErrValidationFailed = errors.New("validation failed")

// dependencies are the outbound adapters the command is wired with.
type dependencies struct {
	configs    domain.ConfigLoader
	configPath func() string
	engines    func(cfg domain.EngineConfig, stderr io.Writer, logger *slog.Logger) domain.ValidatorFactory
}

func defaultDependencies() dependencies {
	loader := config.New()
	return dependencies{
		configs:    loader,
		configPath: loader.DefaultPath,
		engines: func(cfg domain.EngineConfig, stderr io.Writer, logger *slog.Logger) domain.ValidatorFactory {
			return engine.NewFactory(cfg, stderr, logger)
		},
	}
}

func newRootCmd(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   programName + " [options] [<filename>]",
		Short: "Validate a SPIR-V binary file",
		Long:  "spirv-val reads a SPIR-V binary from a file or standard input and reports what the validation engine finds.",
		// Every token belongs to ParseArgs: "-" is a file name and
		// --max-* flags are resolved from a table.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, args)
		},
	}
}

// NewRootCmdForTest returns the root command wired to engines, with default
// tool configuration and no environment lookups.
func NewRootCmdForTest(engines domain.ValidatorFactory) *cobra.Command {
	return newRootCmd(dependencies{
		configs:    config.NewWithEnv(func(string) string { return "" }),
		configPath: func() string { return "" },
		engines: func(domain.EngineConfig, io.Writer, *slog.Logger) domain.ValidatorFactory {
			return engines
		},
	})
}

// argsGuard stops cobra's command lookup so a first token such as
// "__complete" reaches ParseArgs as an input path. run drops it.
const argsGuard = "--"

// SetArgs hands args to cmd behind argsGuard. Always set arguments on the
// root command through SetArgs, never cmd.SetArgs.
func SetArgs(cmd *cobra.Command, args []string) {
	cmd.SetArgs(append([]string{argsGuard}, args...))
}

// Execute runs the command against os.Args. A nil error means exit status 0;
// any error means 1.
func Execute() error {
	cmd := newRootCmd(defaultDependencies())
	SetArgs(cmd, os.Args[1:])
	return cmd.Execute()
}
