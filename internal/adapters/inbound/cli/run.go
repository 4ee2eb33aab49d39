package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spirvkit/spirv-val/internal/adapters/outbound/diagnostic"
	"github.com/spirvkit/spirv-val/internal/adapters/outbound/input"
	"github.com/spirvkit/spirv-val/internal/adapters/outbound/logging"
	"github.com/spirvkit/spirv-val/internal/application"
)

func run(cmd *cobra.Command, deps dependencies, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if len(args) > 0 && args[0] == argsGuard {
		args = args[1:]
	}
	inv, err := ParseArgs(args)
	if err != nil {
		var argErr *ArgError
		if errors.As(err, &argErr) && argErr.ShowUsage {
			printUsage(out)
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return err
	}

	switch inv.Action {
	case ActionHelp:
		printUsage(out)
		return nil
	case ActionVersion:
		printVersion(out)
		return nil
	}

	path := deps.configPath()
	toolCfg, err := deps.configs.Load(path)
	if err != nil {
		fmt.Fprintf(errOut, "error: loading config: %v\n", err)
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.NewLogger(toolCfg.LogLevel, errOut)
	logger.Debug("configuration loaded", "path", path, "engine", toolCfg.Engine.Command)

	svc := application.NewValidateService(
		input.New(logger),
		deps.engines(toolCfg.Engine, errOut, logger),
		logger,
	)

	ok, err := svc.Validate(inv.Config, cmd.InOrStdin(), diagnostic.New(out, errOut))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return err
	}
	if !ok {
		return ErrValidationFailed
	}
	return nil
}
