package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// LimitKind names one of the universal structural limits enforced by the
// validator.
type LimitKind int

const (
	LimitStructMembers LimitKind = iota
	LimitStructDepth
	LimitLocalVariables
	LimitGlobalVariables
	LimitSwitchBranches
	LimitFunctionArgs
	LimitControlFlowNestingDepth
	LimitAccessChainIndexes
)

// LimitOptionPrefix gates every limit flag.
const LimitOptionPrefix = "--max-"

// limitIdents holds the Go-style names limit flags are derived from.
var limitIdents = []string{
	LimitStructMembers:           "StructMembers",
	LimitStructDepth:             "StructDepth",
	LimitLocalVariables:          "LocalVariables",
	LimitGlobalVariables:         "GlobalVariables",
	LimitSwitchBranches:          "SwitchBranches",
	LimitFunctionArgs:            "FunctionArgs",
	LimitControlFlowNestingDepth: "ControlFlowNestingDepth",
	LimitAccessChainIndexes:      "AccessChainIndexes",
}

// AllLimitKinds lists every limit kind in table order.
func AllLimitKinds() []LimitKind {
	kinds := make([]LimitKind, len(limitIdents))
	for i := range limitIdents {
		kinds[i] = LimitKind(i)
	}
	return kinds
}

// Name returns the kebab-case name, e.g. "control-flow-nesting-depth".
func (k LimitKind) Name() string {
	if k < 0 || int(k) >= len(limitIdents) {
		return ""
	}
	return strings.ToLower(strings.Join(camelcase.Split(limitIdents[k]), "-"))
}

// Option returns the command-line flag for the limit.
func (k LimitKind) Option() string {
	return LimitOptionPrefix + k.Name()
}

func (k LimitKind) String() string { return k.Name() }

// ParseLimitOption resolves a full "--max-<name>" token to its limit kind.
// Only exact names match.
func ParseLimitOption(opt string) (LimitKind, bool) {
	name, ok := strings.CutPrefix(opt, LimitOptionPrefix)
	if !ok || name == "" {
		return 0, false
	}
	for _, k := range AllLimitKinds() {
		if k.Name() == name {
			return k, true
		}
	}
	return 0, false
}
