package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/spirvkit/spirv-val/internal/domain"
)

// Factory implements domain.ValidatorFactory by running an engine executable.
type Factory struct {
	cfg    domain.EngineConfig
	stderr io.Writer
	logger *slog.Logger
}

// NewFactory creates a Factory. The engine's own stderr is copied to stderr
// once the engine exits, after its diagnostics have been consumed, so stderr
// is only ever written from the caller's goroutine.
func NewFactory(cfg domain.EngineConfig, stderr io.Writer, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Factory{cfg: cfg, stderr: stderr, logger: logger}
}

func (f *Factory) NewValidator(env domain.TargetEnv) domain.Validator {
	return &Process{
		command: f.cfg.Command,
		args:    f.cfg.Args,
		env:     env,
		stderr:  f.stderr,
		logger:  f.logger,
	}
}

// Process validates a module by piping it through one engine run.
//
// The engine receives the words on stdin and writes one JSON diagnostic per
// line to stdout. Exit status 0 means valid, 1 invalid; anything else is an
// engine failure.
type Process struct {
	command  string
	args     []string
	env      domain.TargetEnv
	stderr   io.Writer
	logger   *slog.Logger
	consumer domain.MessageConsumer
}

func (p *Process) SetMessageConsumer(c domain.MessageConsumer) { p.consumer = c }

// Args returns the engine argv (without the command) for opts.
func (p *Process) Args(opts *domain.ValidatorOptions) []string {
	args := append([]string(nil), p.args...)
	args = append(args, "--target-env", p.env.Name())
	if opts == nil {
		return args
	}
	for _, l := range opts.Limits() {
		args = append(args, "--limit", l.Kind.Name()+"="+strconv.FormatUint(uint64(l.Value), 10))
	}
	if opts.RelaxLogicalPointer() {
		args = append(args, "--relax-logical-pointer")
	}
	if opts.RelaxStructStore() {
		args = append(args, "--relax-struct-store")
	}
	return args
}

func (p *Process) Validate(words []uint32, opts *domain.ValidatorOptions) bool {
	args := p.Args(opts)
	p.logger.Debug("running validation engine", "command", p.command, "args", args, "words", len(words))

	var engineStderr bytes.Buffer
	cmd := exec.Command(p.command, args...)
	cmd.Stdin = bytes.NewReader(domain.WordsToBytes(words))
	cmd.Stderr = &engineStderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		p.internalError(fmt.Sprintf("connecting to engine: %v", err))
		return false
	}
	if err := cmd.Start(); err != nil {
		p.internalError(fmt.Sprintf("starting engine %s: %v", p.command, err))
		return false
	}

	decodeErr := p.relay(stdout)
	if decodeErr != nil {
		_, _ = io.Copy(io.Discard, stdout)
	}
	waitErr := cmd.Wait()
	if p.stderr != nil {
		_, _ = engineStderr.WriteTo(p.stderr)
	}

	if decodeErr != nil {
		p.internalError(fmt.Sprintf("malformed diagnostic from engine: %v", decodeErr))
		return false
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		return true
	case errors.As(waitErr, &exitErr) && exitErr.ExitCode() == 1:
		return false
	default:
		p.internalError(fmt.Sprintf("engine %s failed: %v", p.command, waitErr))
		return false
	}
}

// relay decodes diagnostics from r and hands them to the consumer as they
// arrive.
func (p *Process) relay(r io.Reader) error {
	dec := json.NewDecoder(r)
	for {
		var m wireDiagnostic
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		p.emit(m.toDomain())
	}
}

func (p *Process) internalError(msg string) {
	p.logger.Debug("validation engine error", "error", msg)
	p.emit(domain.Diagnostic{Level: domain.LevelInternalError, Message: msg})
}

func (p *Process) emit(d domain.Diagnostic) {
	if p.consumer != nil {
		p.consumer.Consume(d)
	}
}

// wireDiagnostic is one line of engine output.
type wireDiagnostic struct {
	Level   string `json:"level"`
	Source  string `json:"source"`
	Line    uint64 `json:"line"`
	Column  uint64 `json:"column"`
	Index   uint64 `json:"index"`
	Message string `json:"message"`
}

func (m wireDiagnostic) toDomain() domain.Diagnostic {
	level, ok := domain.ParseLevel(m.Level)
	if !ok {
		level = domain.LevelUnknown
	}
	return domain.Diagnostic{
		Level:    level,
		Source:   m.Source,
		Position: domain.Position{Line: m.Line, Column: m.Column, Index: m.Index},
		Message:  m.Message,
	}
}
