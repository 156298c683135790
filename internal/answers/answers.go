// Package answers reads raw questionnaire answers from files and command-line
// pairs. Values are returned as strings and validated later by the scoring
// package.
package answers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedValue means a file value is neither a string nor an integer.
var ErrUnsupportedValue = errors.New("unsupported answer value")

// LoadFile reads an answers document. Files ending in .json are decoded as
// JSON; anything else is decoded as YAML. The document must be a flat
// mapping of question ID to option index, given as a string or an integer.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	raw := make(map[string]string, len(doc))
	var errs []error
	for id, v := range doc {
		s, err := stringify(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		raw[id] = s
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return raw, nil
}

func stringify(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		// float64(MaxInt64) rounds up to 2^63, which int64 cannot hold.
		if val != math.Trunc(val) || val >= math.MaxInt64 || val < math.MinInt64 {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedValue, val)
		}
		return strconv.FormatInt(int64(val), 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// ParsePairs converts id=index pairs, as given on the command line, into a
// raw answer map. Later pairs override earlier ones.
func ParsePairs(pairs []string) (map[string]string, error) {
	raw := make(map[string]string, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid answer %q: expected id=index", p)
		}
		raw[id] = value
	}
	return raw, nil
}

// Merge overlays each map onto the previous one and returns a new map.
func Merge(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}
