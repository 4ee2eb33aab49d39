package cli

import (
	"fmt"
	"io"

	"github.com/spirvkit/spirv-val/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s (%s)\n", programName, version, commit)
	fmt.Fprintln(w, "Targets:")
	for _, env := range domain.VersionTargets {
		fmt.Fprintf(w, "  %s\n", env.Description())
	}
}
