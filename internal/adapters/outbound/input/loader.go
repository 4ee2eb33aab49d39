package input

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spirvkit/spirv-val/internal/domain"
)

// Loader implements domain.InputLoader for files and standard input.
type Loader struct {
	logger *slog.Logger
}

// New creates a Loader. A nil logger disables logging.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads the whole input and returns it as native-order words.
// The path "-" reads stdin.
func (l *Loader) Load(path string, stdin io.Reader) ([]uint32, error) {
	var (
		data []byte
		err  error
	)
	if path == domain.StdinPath {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
	}

	if extra := len(data) % domain.WordSize; extra != 0 {
		l.logger.Debug("ignoring trailing partial word", "path", path, "bytes", extra)
	}
	return domain.WordsFromBytes(data), nil
}
