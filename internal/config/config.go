// Package config loads run settings from the environment and an optional
// dotenv file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/dailylog/internal/diagram"
	"github.com/alexanderramin/dailylog/internal/exporter"
	"github.com/alexanderramin/dailylog/internal/llm"
	"github.com/spf13/viper"
)

// ErrMissing indicates one or more required settings are absent.
var ErrMissing = errors.New("missing required configuration")

// EnvPrefix namespaces environment variables, e.g. DAILYLOG_API_KEY.
const EnvPrefix = "DAILYLOG"

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds every setting a run can use.
type Config struct {
	APIKey       string `mapstructure:"api_key"`
	VaultPath    string `mapstructure:"vault_path"`
	ManicTimeExe string `mapstructure:"manictime_exe"`

	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogCalls bool          `mapstructure:"llm_log_calls"`

	ExportView    string   `mapstructure:"export_view"`
	GanttMax      int      `mapstructure:"gantt_max"`
	TableMax      int      `mapstructure:"table_max"`
	TableColumns  []string `mapstructure:"table_columns"`
	DiagramOutput string   `mapstructure:"diagram_output"`

	// EnvFile is the dotenv file actually read, empty when none was.
	EnvFile string `mapstructure:"-"`
}

// Requirement selects which settings Validate insists on.
type Requirement uint8

const (
	NeedAPIKey Requirement = 1 << iota
	NeedVault
	NeedExporter

	NeedAll = NeedAPIKey | NeedVault | NeedExporter
)

// requiredKeys maps each requirement to the variable name users set.
var requiredKeys = []struct {
	need Requirement
	key  string
	get  func(Config) string
}{
	{NeedAPIKey, "API_KEY", func(c Config) string { return c.APIKey }},
	{NeedVault, "VAULT_PATH", func(c Config) string { return c.VaultPath }},
	{NeedExporter, "MANICTIME_EXE", func(c Config) string { return c.ManicTimeExe }},
}

// Load reads settings from DAILYLOG_* variables, bare API_KEY / VAULT_PATH /
// MANICTIME_EXE variables and the dotenv file at envFile. An empty envFile
// reads DefaultEnvFile if it exists. Environment values win over the file.
func Load(envFile string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, k := range requiredKeys {
		key := strings.ToLower(k.key)
		if err := v.BindEnv(key, EnvPrefix+"_"+k.key, k.key); err != nil {
			return cfg, fmt.Errorf("binding %s: %w", k.key, err)
		}
	}

	llmDefaults := llm.DefaultConfig()
	v.SetDefault("provider", string(llmDefaults.Provider))
	v.SetDefault("model", "")
	v.SetDefault("endpoint", "")
	v.SetDefault("timeout", llmDefaults.Timeout)
	v.SetDefault("llm_log_calls", false)

	diagramDefaults := diagram.DefaultOptions("")
	v.SetDefault("export_view", exporter.DefaultView)
	v.SetDefault("gantt_max", diagramDefaults.GanttMax)
	v.SetDefault("table_max", diagramDefaults.TableMax)
	v.SetDefault("table_columns", diagramDefaults.TableColumns)
	v.SetDefault("diagram_output", "")

	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if !missing || explicit {
			return cfg, fmt.Errorf("reading %s: %w", envFile, err)
		}
	} else {
		cfg.EnvFile = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}

	if cfg.GanttMax < 0 {
		return cfg, fmt.Errorf("invalid gantt_max: %d", cfg.GanttMax)
	}
	if cfg.TableMax < 0 {
		return cfg, fmt.Errorf("invalid table_max: %d", cfg.TableMax)
	}
	cfg.TableColumns = trimAll(cfg.TableColumns)

	return cfg, nil
}

// Validate reports every setting required by need that is empty. It has no
// side effects so callers decide how to terminate.
func Validate(cfg Config, need Requirement) error {
	var missing []string
	for _, k := range requiredKeys {
		if need&k.need != 0 && strings.TrimSpace(k.get(cfg)) == "" {
			missing = append(missing, k.key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s; set them in %s or as %s_* environment variables",
		ErrMissing, strings.Join(missing, ", "), DefaultEnvFile, EnvPrefix)
}

// LLM returns the text-generation client settings.
func (c Config) LLM() llm.Config {
	return llm.Config{
		Provider: llm.Provider(strings.ToLower(c.Provider)),
		APIKey:   c.APIKey,
		Model:    c.Model,
		Endpoint: c.Endpoint,
		Timeout:  c.Timeout,
		LogCalls: c.LogCalls,
	}
}

// DiagramPath returns where the diagram document for date is written.
func (c Config) DiagramPath(date string) string {
	if c.DiagramOutput != "" {
		return c.DiagramOutput
	}
	return filepath.Join(c.VaultPath, diagram.FileName(date))
}

func trimAll(values []string) []string {
	out := values[:0:0]
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
