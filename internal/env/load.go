package env

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Load reads the given file (e.g. ".env") and sets an environment variable
// for each KEY=VALUE line. Empty lines and #-comments are skipped. A missing
// file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	pairs, err := Parse(f)
	if err != nil {
		return err
	}
	for key, value := range pairs {
		_ = os.Setenv(key, value)
	}
	return nil
}

// Parse reads KEY=VALUE pairs from r. Values may be single- or double-quoted.
func Parse(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		out[key] = value
	}
	return out, scanner.Err()
}
