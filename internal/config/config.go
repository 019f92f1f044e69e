package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "LANDINGKIT_"

// Config is built once per process and passed down by pointer
type Config struct {
	Log       Log       `koanf:"log"`
	Build     Build     `koanf:"build"`
	Firestore Firestore `koanf:"firestore"`
	Storage   Storage   `koanf:"storage"`
}

type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Build configures the generators and the packager
type Build struct {
	Locales         []string `koanf:"locales" validate:"required,min=1,dive,required"`
	HostManifest    string   `koanf:"host_manifest" validate:"required"`
	DependencyAllow []string `koanf:"dependency_allow"`
	OutputDir       string   `koanf:"output_dir" validate:"required"`
	TempPrefix      string   `koanf:"temp_prefix" validate:"required"`
	ConcurrentTasks bool     `koanf:"concurrent_tasks"`
	DefaultHeader   string   `koanf:"default_header"`
	DefaultFooter   string   `koanf:"default_footer"`
}

// Firestore configures the draft store
type Firestore struct {
	ProjectID       string `koanf:"project_id"`
	CredentialsFile string `koanf:"credentials_file"`
	Collection      string `koanf:"collection" validate:"required"`
}

// Storage configures the archive upload bucket
type Storage struct {
	Bucket string `koanf:"bucket"`
	Prefix string `koanf:"prefix"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Build: Build{
			Locales:      []string{"en", "es"},
			HostManifest: "package.json",
			DependencyAllow: []string{
				"next",
				"react",
				"react-dom",
				"clsx",
				"tailwind-merge",
				"lucide-react",
				"tailwindcss",
				"postcss",
				"autoprefixer",
				"typescript",
				"@types/node",
				"@types/react",
				"@types/react-dom",
			},
			OutputDir:     ".",
			TempPrefix:    "landingkit-",
			DefaultHeader: "simple",
			DefaultFooter: "simple",
		},
		Firestore: Firestore{Collection: "campaign_drafts"},
		Storage:   Storage{Prefix: "exports/"},
	}
}

// Load reads defaults, then an optional .env file, then LANDINGKIT_* variables.
// A missing envFile is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints of cfg
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// transformEnvKey converts BUILD_HOST_MANIFEST into build.host_manifest
func transformEnvKey(s string) string {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '_'
	})
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return parts[0] + "." + strings.Join(parts[1:], "_")
}
