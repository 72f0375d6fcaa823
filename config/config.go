package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Outbound integrations
	OpenAI OpenAIConfig
	N8N    N8NConfig

	Features  FeaturesConfig
	Static    StaticConfig
	Workflows WorkflowsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenAIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type N8NConfig struct {
	BaseURL    string
	APIKey     string
	WebhookURL string
	Timeout    time.Duration
}

// FeaturesConfig holds the availability flags. A disabled flag short-circuits before any network call.
type FeaturesConfig struct {
	EnableAI           bool
	EnableN8NWorkflows bool
	EnableWebScraping  bool
}

// StaticConfig locates the frontend bundle. Dir wins when set; otherwise the first
// existing candidate is served.
type StaticConfig struct {
	Dir        string
	Candidates []string
}

type WorkflowsConfig struct {
	Dir string
}

// envBindings maps config keys to the bare environment variable names used in deployments.
var envBindings = map[string]string{
	"openai.api_key":                "OPENAI_API_KEY",
	"openai.model":                  "OPENAI_MODEL",
	"openai.max_tokens":             "OPENAI_MAX_TOKENS",
	"openai.temperature":            "OPENAI_TEMPERATURE",
	"n8n.base_url":                  "N8N_BASE_URL",
	"n8n.api_key":                   "N8N_API_KEY",
	"n8n.timeout_seconds":           "N8N_TIMEOUT_SECONDS",
	"n8n.webhook_url":               "N8N_WEBHOOK_URL",
	"features.enable_ai":            "ENABLE_AI_FEATURES",
	"features.enable_n8n_workflows": "ENABLE_N8N_WORKFLOWS",
	"features.enable_web_scraping":  "ENABLE_WEB_SCRAPING",
	"http_server.port":              "PORT",
	"http_server.host":              "HOST",
	"static.dir":                    "STATIC_DIR",
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Generation API
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.MaxTokens = viper.GetInt("openai.max_tokens")
	cfg.OpenAI.Temperature = viper.GetFloat64("openai.temperature")
	cfg.OpenAI.Timeout = seconds(viper.GetFloat64("openai.timeout_seconds"))

	// Automation engine
	cfg.N8N.BaseURL = strings.TrimRight(viper.GetString("n8n.base_url"), "/")
	cfg.N8N.APIKey = expandEnvVar(viper.GetString("n8n.api_key"))
	cfg.N8N.WebhookURL = viper.GetString("n8n.webhook_url")
	cfg.N8N.Timeout = seconds(viper.GetFloat64("n8n.timeout_seconds"))

	cfg.Features.EnableAI = viper.GetBool("features.enable_ai")
	cfg.Features.EnableN8NWorkflows = viper.GetBool("features.enable_n8n_workflows")
	cfg.Features.EnableWebScraping = viper.GetBool("features.enable_web_scraping")

	cfg.Static.Dir = viper.GetString("static.dir")
	cfg.Static.Candidates = viper.GetStringSlice("static.candidates")
	cfg.Workflows.Dir = viper.GetString("workflows.dir")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", c.HTTPServer.Port)
	}
	if c.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("openai.max_tokens must not be negative")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be between 0 and 2")
	}
	if c.OpenAI.Timeout < 0 || c.N8N.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// Addr returns the listen address.
func (c HTTPServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "0.0.0.0")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.max_tokens", 500)
	viper.SetDefault("openai.temperature", 0.7)
	viper.SetDefault("openai.timeout_seconds", 30)

	viper.SetDefault("n8n.timeout_seconds", 30)

	viper.SetDefault("features.enable_ai", true)
	viper.SetDefault("features.enable_n8n_workflows", true)
	viper.SetDefault("features.enable_web_scraping", true)

	viper.SetDefault("static.candidates", []string{"frontend/dist", "www"})
	viper.SetDefault("workflows.dir", "workflows")
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// expandEnvVar expands values written as ${VAR_NAME} in config.yaml.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// EnvironmentProduction is the environment name used in production deployments.
const EnvironmentProduction = "production"
