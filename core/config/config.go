package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/sgrep/core/match"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	// ConfigurationName is the file name looked for in a config directory.
	ConfigurationName = "sgrep.yaml"
	// EnvConfig names the environment variable holding a config path.
	EnvConfig = "SGREP_CONFIG"
)

// Configuration holds the user defaults for searches.
type Configuration struct {
	IgnoreCase   bool `json:"ignore_case"`
	InvertMatch  bool `json:"invert_match"`
	WordRegexp   bool `json:"word_regexp"`
	OnlyMatching bool `json:"only_matching"`

	// MaxCount limits printed lines, nil means no limit.
	MaxCount *int `json:"max_count" validate:"omitempty,gte=0"`

	SkipBlankLines bool `json:"skip_blank_lines"`
	Headers        bool `json:"headers"`

	Engine   string `json:"engine" validate:"required,oneof=std coregex"`
	LogLevel string `json:"log_level" validate:"required,oneof=debug info warn error"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Options converts the configuration to search options.
func (c *Configuration) Options() match.Options {
	opts := match.Options{
		IgnoreCase:   c.IgnoreCase,
		InvertMatch:  c.InvertMatch,
		WordRegexp:   c.WordRegexp,
		OnlyMatching: c.OnlyMatching,
		SkipBlank:    c.SkipBlankLines,
		NoHeaders:    !c.Headers,
		Engine:       match.Engine(c.Engine),
	}

	if c.MaxCount != nil {
		opts.Limit = match.Limit{Enabled: true, Max: *c.MaxCount}
	}

	return opts
}

// Marshal encodes the configuration as YAML.
func (c *Configuration) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
