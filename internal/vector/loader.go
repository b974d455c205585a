package vector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrNoVectors is returned when a vector source yields zero usable entries.
// Callers should treat it as a fatal startup condition.
var ErrNoVectors = errors.New("vector source contains no usable entries")

// progressEvery is how many loaded entries between progress log lines.
const progressEvery = 100000

type loadOptions struct {
	logger *zap.Logger
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithLogger enables progress logging during load.
func WithLogger(logger *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

// Load parses a vector source into a Table. Each line is a word followed by
// whitespace-separated float components. The dimension is fixed by the first
// parsed line. Malformed lines (fewer than 2 tokens, a non-numeric component,
// or a component count that differs from the dimension) are skipped; they
// never abort the load. Returns ErrNoVectors if nothing usable was found.
func Load(r io.Reader, opts ...LoadOption) (*Table, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var table *Table
	loaded := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		vec := make([]float32, 0, len(fields)-1)
		ok := true
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				ok = false
				break
			}
			vec = append(vec, float32(v))
		}
		if !ok {
			continue
		}
		if table == nil {
			t, err := NewTable(len(vec))
			if err != nil {
				continue
			}
			table = t
		}
		if err := table.Put(fields[0], vec); err != nil {
			// Dimension differs from the first line; skip the word.
			continue
		}
		loaded++
		if o.logger != nil && loaded%progressEvery == 0 {
			o.logger.Info("loading vectors", zap.Int("loaded", loaded))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vector source: %w", err)
	}
	if table == nil || table.Size() == 0 {
		return nil, ErrNoVectors
	}
	if o.logger != nil {
		o.logger.Info("vectors loaded",
			zap.Int("words", table.Size()),
			zap.Int("dimension", table.Dim()),
		)
	}
	return table, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}
