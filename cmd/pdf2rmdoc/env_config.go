package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	pdf2rmdoc "github.com/alnah/go-pdf2rmdoc"
	"github.com/alnah/go-pdf2rmdoc/internal/config"
)

// ErrEnvFile is returned when --env-file cannot be loaded.
var ErrEnvFile = errors.New("failed to load env file")

// envPrefix is shared by all recognized environment variables.
const envPrefix = "PDF2COLOR_RMDOC_"

// Recognized environment variables.
const (
	envDrawj2d    = pdf2rmdoc.EnvConverterPath // converter path override
	envConfigFile = envPrefix + "CONFIG"       // config name or path
	envResolution = envPrefix + "RESOLUTION"   // default -r<n>
	envOutputDir  = envPrefix + "OUTPUT_DIR"   // default output directory
	envTimeout    = envPrefix + "TIMEOUT"      // default converter timeout
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConverterPath string // PDF2COLOR_RMDOC_DRAWJ2D
	ConfigPath    string // PDF2COLOR_RMDOC_CONFIG
	Resolution    *int   // PDF2COLOR_RMDOC_RESOLUTION
	OutputDir     string // PDF2COLOR_RMDOC_OUTPUT_DIR
	Timeout       string // PDF2COLOR_RMDOC_TIMEOUT
}

// knownEnvVars lists valid PDF2COLOR_RMDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envDrawj2d:    true,
	envConfigFile: true,
	envResolution: true,
	envOutputDir:  true,
	envTimeout:    true,
}

// loadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set keep their value.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable values are ignored with a warning on w.
func loadEnvConfig(w io.Writer) *envConfig {
	cfg := &envConfig{
		ConverterPath: os.Getenv(envDrawj2d),
		ConfigPath:    os.Getenv(envConfigFile),
		OutputDir:     os.Getenv(envOutputDir),
		Timeout:       strings.TrimSpace(os.Getenv(envTimeout)),
	}

	if v := strings.TrimSpace(os.Getenv(envResolution)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Resolution = &n
		} else {
			fmt.Fprintf(w, "warning: ignoring %s=%q (not an integer)\n", envResolution, v)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PDF2COLOR_RMDOC_* variables.
// Helps catch typos like PDF2COLOR_RMDOC_RESOLUTON.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set env values override the config file; flags are applied afterwards
// by mergeFlags, giving: CLI flags > env vars > config file > defaults.
// The converter path is not copied: the resolver ranks env and config
// paths itself so a stale env path can fall back to the configured one.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Resolution != nil {
		n := *env.Resolution
		cfg.Converter.Resolution = &n
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Timeout != "" {
		cfg.Timeout = env.Timeout
	}
}
