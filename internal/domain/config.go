package domain

import "fmt"

// StdinPath is the input path meaning "read standard input".
const StdinPath = "-"

// RunConfig is the configuration produced by argument parsing.
type RunConfig struct {
	TargetEnv TargetEnv
	Options   *ValidatorOptions
	// InputPath is empty when no input was named.
	InputPath string
	// InputSet marks an input token that was given but empty.
	InputSet bool
}

// DefaultRunConfig returns the configuration used before any argument is seen.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		TargetEnv: DefaultTargetEnv,
		Options:   NewValidatorOptions(),
	}
}

// HasInput reports whether an input path (including "-") was given.
func (c RunConfig) HasInput() bool { return c.InputSet || c.InputPath != "" }

// ReadsStdin reports whether input comes from standard input.
func (c RunConfig) ReadsStdin() bool {
	return c.InputPath == StdinPath || !c.HasInput()
}

// LoadPath is the path handed to the input loader: StdinPath when reading
// standard input, InputPath otherwise.
func (c RunConfig) LoadPath() string {
	if c.ReadsStdin() {
		return StdinPath
	}
	return c.InputPath
}

// EngineConfig describes how to reach the validation engine.
type EngineConfig struct {
	Command string   `yaml:"command" json:"command,omitempty"`
	Args    []string `yaml:"args"    json:"args,omitempty"`
}

// DefaultEngineCommand is resolved on PATH when no command is configured.
const DefaultEngineCommand = "spirv-val-engine"

// ValidLogLevels enumerates accepted log_level values. Empty disables logging.
var ValidLogLevels = []string{"", "debug", "info", "warn", "warning", "error"}

// ToolConfig holds settings loaded from the config file.
type ToolConfig struct {
	Engine   EngineConfig `yaml:"engine"    json:"engine"`
	LogLevel string       `yaml:"log_level" json:"log_level,omitempty"`
}

// DefaultToolConfig returns the configuration used when no file exists.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{Engine: EngineConfig{Command: DefaultEngineCommand}}
}

// Validate checks the config for invalid values.
func (c ToolConfig) Validate() error {
	valid := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.Engine.Command == "" && len(c.Engine.Args) > 0 {
		return fmt.Errorf("engine.args set without engine.command")
	}
	return nil
}
