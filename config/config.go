package config

import (
	"fmt"
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

	// Concierge specifics
	LLM     LLMConfig
	Persona PersonaConfig
	CRM     CRMConfig
	Search  SearchConfig
	Session SessionConfig
	Widget  WidgetConfig

	// HTTP policy
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Admin     AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig holds the listener settings. TrustedHosts is a list
// of acceptable Host header values ("*.domain" wildcards allowed);
// empty means any host is served.
type HTTPServerConfig struct {
	Port         int
	Mode         string
	TrustedHosts []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds the model gateway settings. APIKey is required;
// startup aborts without it.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// PersonaConfig selects the system prompt. The file is a JSON map of
// persona key to prompt (string or list of strings); the active key
// must exist or startup aborts.
type PersonaConfig struct {
	File   string
	Active string
	Prompt string // resolved at load time
}

// CRMConfig holds the GoHighLevel MCP credentials. The integration is
// enabled only when both the token and location id are present.
type CRMConfig struct {
	Token      string
	LocationID string
	BaseURL    string
	PipelineID string
	StageID    string
}

// Enabled reports whether the CRM integration should be constructed.
func (c CRMConfig) Enabled() bool {
	return c.Token != "" && c.LocationID != ""
}

type SearchConfig struct {
	APIKey string
}

type SessionConfig struct {
	MaxSessions int
	TTL         time.Duration
}

type WidgetConfig struct {
	AvatarPath string
}

type RateLimitConfig struct {
	ChatPerMin   int
	ClearPerMin  int
	SearchPerMin int
	LeadPerMin   int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AdminConfig struct {
	Token string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedHosts = splitList(viper.GetString("http_server.trusted_hosts"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Model gateway
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Temperature = float32(viper.GetFloat64("llm.temperature"))
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.LLM.APIKey = key
	}
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("model API key is missing - set llm.api_key or OPENAI_API_KEY")
	}

	// Persona
	cfg.Persona.File = viper.GetString("persona.file")
	cfg.Persona.Active = viper.GetString("persona.active")
	prompt, err := loadPersona(cfg.Persona.File, cfg.Persona.Active)
	if err != nil {
		return nil, fmt.Errorf("persona configuration: %w", err)
	}
	cfg.Persona.Prompt = prompt

	// CRM
	cfg.CRM.Token = viper.GetString("crm.token")
	cfg.CRM.LocationID = viper.GetString("crm.location_id")
	cfg.CRM.BaseURL = viper.GetString("crm.base_url")
	cfg.CRM.PipelineID = viper.GetString("crm.pipeline_id")
	cfg.CRM.StageID = viper.GetString("crm.stage_id")
	if token := viper.GetString("ghl_api_token"); token != "" {
		cfg.CRM.Token = token
	}
	if locationID := viper.GetString("ghl_location_id"); locationID != "" {
		cfg.CRM.LocationID = locationID
	}

	// Web search
	cfg.Search.APIKey = viper.GetString("search.api_key")
	if key := viper.GetString("tavily_api_key"); key != "" {
		cfg.Search.APIKey = key
	}

	// Sessions
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	// Widget
	cfg.Widget.AvatarPath = viper.GetString("widget.avatar_path")

	// Rate limits
	cfg.RateLimit.ChatPerMin = viper.GetInt("rate_limit.chat_per_min")
	cfg.RateLimit.ClearPerMin = viper.GetInt("rate_limit.clear_per_min")
	cfg.RateLimit.SearchPerMin = viper.GetInt("rate_limit.search_per_min")
	cfg.RateLimit.LeadPerMin = viper.GetInt("rate_limit.lead_per_min")

	// CORS allow-list; comma-separated since viper may not parse arrays
	// from env seamlessly
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Admin
	cfg.Admin.Token = viper.GetString("admin.token")
	if token := viper.GetString("admin_token"); token != "" {
		cfg.Admin.Token = token
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Model defaults
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.9)
	viper.SetDefault("llm.max_tokens", 1024)

	// Persona defaults
	viper.SetDefault("persona.file", "./config/prompt.json")
	viper.SetDefault("persona.active", "brax_jeweler")

	// Session defaults
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.ttl", "2h")

	// Widget defaults
	viper.SetDefault("widget.avatar_path", "./config/brax_avatar.png")

	// Rate-limit defaults
	viper.SetDefault("rate_limit.chat_per_min", 20)
	viper.SetDefault("rate_limit.clear_per_min", 10)
	viper.SetDefault("rate_limit.search_per_min", 30)
	viper.SetDefault("rate_limit.lead_per_min", 30)
}
