// Package config loads YAML configuration files that reference the environment.
//
// Two forms are expanded before decoding: Go template actions such as {{ .DATABASE_HOST }}
// and shell style variables such as ${DATABASE_HOST} or ${DATABASE_HOST:-localhost}.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// Load decodes the file at path into cfg. A missing file is not an error: cfg is left as is and
// found is false. Unknown keys are rejected.
func Load(path string, cfg any) (found bool, err error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	content, err := render(path, raw, environ())
	if err != nil {
		return true, err
	}
	if err := yaml.UnmarshalStrict(content, cfg); err != nil {
		return true, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, pair := range os.Environ() {
		if k, v, ok := strings.Cut(pair, "="); ok {
			env[k] = v
		}
	}
	return env
}

func render(name string, raw []byte, env map[string]string) ([]byte, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	out := &bytes.Buffer{}
	if err := t.Execute(out, env); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	expanded := os.Expand(out.String(), func(key string) string {
		key, fallback, _ := strings.Cut(key, ":-")
		if v := env[key]; v != "" {
			return v
		}
		return fallback
	})
	return []byte(expanded), nil
}
