package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spirvkit/spirv-val/internal/domain"
)

const programName = "spirv-val"

// limitHelp describes each limit flag in usage text.
var limitHelp = map[domain.LimitKind]string{
	domain.LimitStructMembers:           "<maximum number of structure members allowed>",
	domain.LimitStructDepth:             "<maximum allowed nesting depth of structures>",
	domain.LimitLocalVariables:          "<maximum number of local variables allowed>",
	domain.LimitGlobalVariables:         "<maximum number of global variables allowed>",
	domain.LimitSwitchBranches:          "<maximum number of branches allowed in switch statements>",
	domain.LimitFunctionArgs:            "<maximum number arguments allowed per function>",
	domain.LimitControlFlowNestingDepth: "<maximum Control Flow nesting depth allowed>",
	domain.LimitAccessChainIndexes:      "<maximum number of indexes allowed to use for Access Chain instructions>",
}

func usageText() string {
	var b strings.Builder
	fmt.Fprintf(&b, `%[1]s - Validate a SPIR-V binary file.

USAGE: %[1]s [options] [<filename>]

The SPIR-V binary is read from <filename>. If no file is specified,
or if the filename is "-", then the binary is read from standard input.

Options:
  -h, --help                       Print this help.
`, programName)
	for _, k := range domain.AllLimitKinds() {
		fmt.Fprintf(&b, "  %-32s %s\n", k.Option(), limitHelp[k])
	}
	fmt.Fprintf(&b, `  --relax-logical-pointer          Allow allocating an object of a pointer type and returning
                                   a pointer value from a function in logical addressing mode
  --relax-struct-store             Allow store from one struct type to a
                                   different type with compatible layout and
                                   members.
  --version                        Display validator version information.
  --target-env                     {%s}
                                   Use Vulkan1.0/SPIR-V1.0/SPIR-V1.1/SPIR-V1.2 validation rules.
`, strings.Join(domain.TargetEnvNames(), "|"))
	return b.String()
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText())
}
