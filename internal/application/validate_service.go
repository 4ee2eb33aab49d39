package application

import (
	"io"
	"log/slog"

	"github.com/spirvkit/spirv-val/internal/domain"
)

// ValidateService loads the input module and runs one validation call.
type ValidateService struct {
	loader  domain.InputLoader
	engines domain.ValidatorFactory
	logger  *slog.Logger
}

// NewValidateService creates a new ValidateService with all required dependencies.
func NewValidateService(loader domain.InputLoader, engines domain.ValidatorFactory, logger *slog.Logger) *ValidateService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ValidateService{loader: loader, engines: engines, logger: logger}
}

// Validate reads cfg's input (from stdin when it names none) and validates
// it under cfg's target environment and options. Diagnostics reach consumer
// before Validate returns. A non-nil error means the input could not be read
// and no validation took place.
func (s *ValidateService) Validate(cfg domain.RunConfig, stdin io.Reader, consumer domain.MessageConsumer) (bool, error) {
	path := cfg.LoadPath()
	words, err := s.loader.Load(path, stdin)
	if err != nil {
		return false, err
	}
	s.logger.Debug("loaded input", "path", path, "words", len(words))

	opts := cfg.Options
	if opts == nil {
		opts = domain.NewValidatorOptions()
	}

	v := s.engines.NewValidator(cfg.TargetEnv)
	v.SetMessageConsumer(consumer)
	ok := v.Validate(words, opts)

	s.logger.Debug("validation finished", "target_env", cfg.TargetEnv.Name(), "valid", ok)
	return ok, nil
}
