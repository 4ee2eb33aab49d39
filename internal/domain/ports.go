package domain

import "io"

// MessageConsumer receives diagnostics synchronously, in report order.
type MessageConsumer interface {
	Consume(d Diagnostic)
}

// MessageConsumerFunc adapts a function to MessageConsumer.
type MessageConsumerFunc func(d Diagnostic)

func (f MessageConsumerFunc) Consume(d Diagnostic) { f(d) }

// Validator is a validation engine bound to one target environment.
type Validator interface {
	SetMessageConsumer(c MessageConsumer)
	// Validate reports whether words form a valid module. Problems,
	// including engine failures, are reported to the consumer.
	Validate(words []uint32, opts *ValidatorOptions) bool
}

// ValidatorFactory constructs validators.
type ValidatorFactory interface {
	NewValidator(env TargetEnv) Validator
}

// InputLoader reads the input module as 32-bit words.
type InputLoader interface {
	Load(path string, stdin io.Reader) ([]uint32, error)
}

// ConfigLoader loads tool settings.
type ConfigLoader interface {
	Load(path string) (ToolConfig, error)
}
