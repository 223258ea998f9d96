package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// StdinName is the path argument that selects standard input.
const StdinName = "-"

var (
	// DefaultMaxPayloadSize is 1MiB
	DefaultMaxPayloadSize = 1 << 20
	// EnvMaxPayloadSize is the environment variable to override the default
	EnvMaxPayloadSize = "TABITHA_MAX_PAYLOAD_SIZE"
)

var (
	ErrPayloadTooLarge = errors.New("payload exceeds maximum allowed size")
	ErrInvalidUTF8     = errors.New("payload contains invalid UTF-8 sequences")
	ErrEmptyPayload    = errors.New("empty payload")
)

// ReadPayload loads a JSON or YAML document from path, or from stdin when
// path is empty or "-".
func ReadPayload(path string, stdin io.Reader) (any, error) {
	ext := filepath.Ext(path)
	if path == "" || path == StdinName {
		ext = ""
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
		defer f.Close()
		stdin = f
	}

	// Read one byte past the limit to detect oversized input.
	limit := maxPayloadSize()
	data, err := io.ReadAll(io.LimitReader(stdin, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if len(data) > limit {
		return nil, fmt.Errorf("%w: limit=%d", ErrPayloadTooLarge, limit)
	}
	return DecodePayload(data, ext)
}

// DecodePayload parses data by extension. Without a known extension JSON is
// tried first, then YAML.
func DecodePayload(data []byte, ext string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	switch strings.ToLower(ext) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	}

	if v, err := decodeJSON(data); err == nil {
		return v, nil
	}
	return decodeYAML(data)
}

func decodeJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return v, nil
}

func maxPayloadSize() int {
	if v := os.Getenv(EnvMaxPayloadSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxPayloadSize
}
