package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/dailylog/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no inherited settings.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{"API_KEY", "VAULT_PATH", "MANICTIME_EXE"} {
		t.Setenv(k, "")
		t.Setenv(EnvPrefix+"_"+k, "")
	}
	for _, k := range []string{"PROVIDER", "MODEL", "ENDPOINT", "TIMEOUT", "GANTT_MAX", "TABLE_MAX", "TABLE_COLUMNS", "DIAGRAM_OUTPUT", "EXPORT_VIEW", "LLM_LOG_CALLS"} {
		t.Setenv(EnvPrefix+"_"+k, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "ManicTime/Applications", cfg.ExportView)
	assert.Equal(t, 30, cfg.GanttMax)
	assert.Equal(t, 20, cfg.TableMax)
	assert.Equal(t, []string{"Process", "Start", "End", "Duration"}, cfg.TableColumns)
	assert.Empty(t, cfg.EnvFile)
}

func TestLoad_BareEnvironmentVariables(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "k")
	t.Setenv("VAULT_PATH", "/vault")
	t.Setenv("MANICTIME_EXE", "mtc.exe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "/vault", cfg.VaultPath)
	assert.Equal(t, "mtc.exe", cfg.ManicTimeExe)
	assert.NoError(t, Validate(cfg, NeedAll))
}

func TestLoad_PrefixedVariablesWin(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "bare")
	t.Setenv("DAILYLOG_API_KEY", "prefixed")
	t.Setenv("DAILYLOG_GANTT_MAX", "0")
	t.Setenv("DAILYLOG_TIMEOUT", "90s")
	t.Setenv("DAILYLOG_TABLE_COLUMNS", "Name, Process")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.APIKey)
	assert.Equal(t, 0, cfg.GanttMax)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"Name", "Process"}, cfg.TableColumns)
}

func TestLoad_DefaultEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"API_KEY=from-file\nVAULT_PATH=/notes\nMANICTIME_EXE=/bin/mtc\nGANTT_MAX=10\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "/notes", cfg.VaultPath)
	assert.Equal(t, 10, cfg.GanttMax)
	assert.NotEmpty(t, cfg.EnvFile)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("API_KEY=from-file\n"), 0644))
	t.Setenv("API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoad_ExplicitEnvFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.env"))
	assert.Error(t, err)
}

func TestLoad_NegativeLimitRejected(t *testing.T) {
	isolate(t)
	t.Setenv("DAILYLOG_TABLE_MAX", "-1")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate_ListsEveryMissingKey(t *testing.T) {
	err := Validate(Config{VaultPath: "/v"}, NeedAll)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissing)
	assert.Contains(t, err.Error(), "API_KEY")
	assert.Contains(t, err.Error(), "MANICTIME_EXE")
	assert.NotContains(t, err.Error(), "VAULT_PATH,")
	assert.Contains(t, err.Error(), ".env")
}

func TestValidate_OnlyRequested(t *testing.T) {
	assert.NoError(t, Validate(Config{VaultPath: "/v"}, NeedVault))
	assert.NoError(t, Validate(Config{}, 0))
	assert.ErrorIs(t, Validate(Config{APIKey: "  "}, NeedAPIKey), ErrMissing)
}

func TestConfig_LLM(t *testing.T) {
	cfg := Config{Provider: "Ollama", APIKey: "k", Model: "m", Timeout: time.Second}
	got := cfg.LLM()
	assert.Equal(t, llm.ProviderOllama, got.Provider)
	assert.Equal(t, "k", got.APIKey)
	assert.Equal(t, time.Second, got.Timeout)
}

func TestConfig_DiagramPath(t *testing.T) {
	cfg := Config{VaultPath: "/vault"}
	assert.Equal(t, filepath.Join("/vault", "ManicTime_Diagrams_2025-05-20.md"), cfg.DiagramPath("2025-05-20"))

	cfg.DiagramOutput = "/tmp/out.md"
	assert.Equal(t, "/tmp/out.md", cfg.DiagramPath("2025-05-20"))
}
