package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vipcxj/num/internal/shellenv"
)

const EnvPrefix = "NUM"

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("invalid configuration")

var defaults = map[string]any{
	"log.level":      "warn",
	"log.format":     "text",
	"console.prompt": "$ ",
	"console.banner": true,
	"export.shell":   "auto",
	"export.prefix":  "",
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"prompt":     "console.prompt",
	"banner":     "console.banner",
	"shell":      "export.shell",
	"prefix":     "export.prefix",
}

var prefixRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Options struct {
	// File is an explicit config file; its format follows the extension. Empty means none.
	File string
	// Flags are consulted for the keys in flagKeys when they were set on the command line.
	Flags []*pflag.FlagSet
}

// Load builds a Config from defaults < File < NUM_* env < Flags and validates it.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.File, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, fs := range opts.Flags {
		if fs == nil {
			continue
		}
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validatorOnce builds the shared validator on first use.
var validatorOnce = sync.OnceValues(newValidator)

// customValidations are the tags Config uses beyond validator's built-in ones.
var customValidations = map[string]validator.Func{
	"shell": func(fl validator.FieldLevel) bool {
		_, err := shellenv.ShellTypeString(fl.Field().String())
		return err == nil
	},
	"envprefix": func(fl validator.FieldLevel) bool {
		return prefixRe.MatchString(fl.Field().String())
	},
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range customValidations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return validate, nil
}

// Validate checks cfg against its struct tags.
func (c *Config) Validate() error {
	validate, err := validatorOnce()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %q fails %q", keyOf(fe), fe.Value(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// keyOf turns "Config.Log.Level" into "log.level".
func keyOf(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return strings.ToLower(ns)
}
