package domain

import "fmt"

// TargetEnv identifies the rule set the validator applies.
type TargetEnv int

const (
	TargetEnvUniversal10 TargetEnv = iota
	TargetEnvUniversal11
	TargetEnvUniversal12
	TargetEnvVulkan10
)

// DefaultTargetEnv is used when --target-env is not given.
const DefaultTargetEnv = TargetEnvUniversal12

// targetEnvNames maps the accepted --target-env spellings to environments.
// Order is the order shown in usage text.
var targetEnvNames = []struct {
	name string
	env  TargetEnv
}{
	{"vulkan1.0", TargetEnvVulkan10},
	{"spv1.0", TargetEnvUniversal10},
	{"spv1.1", TargetEnvUniversal11},
	{"spv1.2", TargetEnvUniversal12},
}

// ParseTargetEnv resolves an exact --target-env value.
func ParseTargetEnv(s string) (TargetEnv, bool) {
	for _, e := range targetEnvNames {
		if e.name == s {
			return e.env, true
		}
	}
	return 0, false
}

// TargetEnvNames returns the accepted --target-env values.
func TargetEnvNames() []string {
	names := make([]string, len(targetEnvNames))
	for i, e := range targetEnvNames {
		names[i] = e.name
	}
	return names
}

// Name returns the --target-env spelling of the environment.
func (e TargetEnv) Name() string {
	for _, n := range targetEnvNames {
		if n.env == e {
			return n.name
		}
	}
	return fmt.Sprintf("TargetEnv(%d)", int(e))
}

// Description returns the human-readable environment description.
func (e TargetEnv) Description() string {
	switch e {
	case TargetEnvUniversal10:
		return "SPIR-V 1.0"
	case TargetEnvUniversal11:
		return "SPIR-V 1.1"
	case TargetEnvUniversal12:
		return "SPIR-V 1.2"
	case TargetEnvVulkan10:
		return "SPIR-V 1.0 (under Vulkan 1.0 semantics)"
	default:
		return "Unknown"
	}
}

func (e TargetEnv) String() string { return e.Name() }

// VersionTargets lists the environments printed by --version. The list is
// fixed and does not follow the --target-env table: spv1.0 is not shown.
var VersionTargets = []TargetEnv{
	TargetEnvUniversal11,
	TargetEnvVulkan10,
	TargetEnvUniversal12,
}
