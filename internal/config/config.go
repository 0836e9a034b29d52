// Package config loads imgproc defaults from a YAML file and exposes them as
// a kong resolver, so file values fill every flag that is not given on the
// command line.
//
// A file has top-level keys for global flags and one section per command;
// inside a command section the command's own flags win over top-level keys:
//
//	log-level: debug
//	workers: 4
//	edge:
//	  blur: 1.4
//	  low-threshold: 20
//	sharpen:
//	  method: kernel
//
// Keys may use dashes or underscores.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when present in the working
// directory.
const DefaultFile = "imgproc.yaml"

// Values is a parsed configuration file.
type Values map[string]any

// Parse decodes YAML from r. An empty document yields empty Values.
func Parse(r io.Reader) (Values, error) {
	// Decoding into a plain map keeps nested sections as map[string]any;
	// a Values target would make yaml.v3 decode them as Values too.
	m := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	return Values(m), nil
}

// Load reads and parses the file at path.
func Load(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Lookup finds flag in the section of command, then at the top level.
// Scalars are returned in string form; a missing key or a nested mapping
// reports false.
func (v Values) Lookup(command, flag string) (string, bool) {
	if command != "" {
		if section, ok := asMap(get(v, command)); ok {
			if s, ok := scalar(get(section, flag)); ok {
				return s, true
			}
		}
	}
	return scalar(get(v, flag))
}

// get looks key up as written, with dashes as underscores and the reverse.
func get(m map[string]any, key string) any {
	for _, k := range []string{key, strings.ReplaceAll(key, "-", "_"), strings.ReplaceAll(key, "_", "-")} {
		if val, ok := m[k]; ok {
			return val
		}
	}
	return nil
}

func asMap(val any) (map[string]any, bool) {
	switch x := val.(type) {
	case map[string]any:
		return x, true
	case Values:
		return x, true
	default:
		return nil, false
	}
}

func scalar(val any) (string, bool) {
	switch x := val.(type) {
	case nil, map[string]any, Values, []any:
		return "", false
	case string:
		return x, true
	default:
		return fmt.Sprint(x), true
	}
}

// Resolver adapts v to kong. Flags declared on a command are looked up in
// that command's section first.
func (v Values) Resolver() kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		command := ""
		if parent != nil && parent.Command != nil {
			command = parent.Command.Name
		}
		if s, ok := v.Lookup(command, flag.Name); ok {
			return s, nil
		}
		return nil, nil
	})
}

// Loader is a kong.ConfigurationLoader for YAML files.
func Loader(r io.Reader) (kong.Resolver, error) {
	v, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return v.Resolver(), nil
}
