package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spirvkit/spirv-val/internal/domain"
)

// Action is what the command does after argument parsing.
type Action int

const (
	ActionValidate Action = iota
	ActionHelp
	ActionVersion
)

// Invocation is the result of parsing the command line.
type Invocation struct {
	Action Action
	Config domain.RunConfig
}

// ArgError is a command-line error. Parsing stops at the first one.
type ArgError struct {
	Message string
	// ShowUsage asks for the usage block instead of an error line.
	ShowUsage bool
}

func (e *ArgError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func argErrorf(format string, args ...any) error {
	return &ArgError{Message: fmt.Sprintf(format, args...)}
}

// ParseArgs parses args (without the program name) in a single forward
// pass. On error the returned Invocation holds whatever was applied before
// the failing token.
func ParseArgs(args []string) (Invocation, error) {
	inv := Invocation{Action: ActionValidate, Config: domain.DefaultRunConfig()}
	haveInput := false

	setInput := func(path string) error {
		if haveInput {
			return argErrorf("More than one input file specified")
		}
		haveInput = true
		inv.Config.InputPath = path
		inv.Config.InputSet = true
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			if err := setInput(arg); err != nil {
				return inv, err
			}
			continue
		}

		switch {
		case strings.HasPrefix(arg, domain.LimitOptionPrefix):
			if i+1 >= len(args) {
				return inv, argErrorf("Missing argument to %s", arg)
			}
			kind, ok := domain.ParseLimitOption(arg)
			if !ok {
				return inv, argErrorf("unrecognized option: %s", arg)
			}
			i++
			n, err := strconv.ParseUint(args[i], 10, 32)
			if err != nil {
				return inv, argErrorf("missing argument to %s", arg)
			}
			inv.Config.Options.SetUniversalLimit(kind, uint32(n))
		case arg == "--version":
			inv.Action = ActionVersion
			return inv, nil
		case arg == "--help" || arg == "-h":
			inv.Action = ActionHelp
			return inv, nil
		case arg == "--target-env":
			if i+1 >= len(args) {
				return inv, argErrorf("Missing argument to --target-env")
			}
			i++
			env, ok := domain.ParseTargetEnv(args[i])
			if !ok {
				return inv, argErrorf("Unrecognized target env: %s", args[i])
			}
			inv.Config.TargetEnv = env
		case arg == "--relax-logical-pointer":
			inv.Config.Options.SetRelaxLogicalPointer(true)
		case arg == "--relax-struct-store":
			inv.Config.Options.SetRelaxStructStore(true)
		case arg == domain.StdinPath:
			if err := setInput(arg); err != nil {
				return inv, err
			}
		default:
			return inv, &ArgError{Message: "unrecognized option: " + arg, ShowUsage: true}
		}
	}
	return inv, nil
}
