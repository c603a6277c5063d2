package transpiler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls a transpilation. It can be loaded from a TOML or YAML
// file; see LoadConfig.
type Config struct {
	// Standalone wraps the output in an HTML document.
	Standalone bool `toml:"standalone" yaml:"standalone"`
	// Title is the document title in standalone mode.
	Title string `toml:"title" yaml:"title"`
	// EscapeText HTML-escapes words.
	EscapeText bool `toml:"escape_text" yaml:"escape_text"`
	// StripBOM drops a leading byte order mark.
	StripBOM bool `toml:"strip_bom" yaml:"strip_bom"`
	// Trace is the trace level (Debug, Info or Error) used by the command.
	Trace string `toml:"trace" yaml:"trace"`
}

// LoadConfig reads a configuration file. The format is chosen by the file
// extension: .toml, .yaml or .yml.
func LoadConfig(path string) (Config, error) {
	var conf Config
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "could not open config")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err = toml.Decode(string(data), &conf); err != nil {
			return conf, errors.Wrap(err, "could not parse config")
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &conf); err != nil {
			return conf, errors.Wrap(err, "could not parse config")
		}
	default:
		return conf, errors.Errorf("unsupported config format %q", ext)
	}
	tracer().Debugf("loaded config from %s", path)
	return conf, nil
}
