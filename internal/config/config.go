package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                  string        `mapstructure:"ENV"`
	Port                 string        `mapstructure:"PORT"`
	BackendURL           string        `mapstructure:"BACKEND_URL"`
	DefaultPIN           string        `mapstructure:"DEFAULT_PIN"`
	APIToken             string        `mapstructure:"API_TOKEN"`
	AdminKey             string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed          string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout       time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	ProxyPrefixes        string        `mapstructure:"PROXY_PREFIXES"`
	SessionIdleTimeout   time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	DrillDownParallelism int           `mapstructure:"DRILLDOWN_PARALLELISM"`
	UpstreamRPS          float64       `mapstructure:"UPSTREAM_RPS"`
	AnalysisMode         string        `mapstructure:"ANALYSIS_MODE"`
	MarkerMergeKm        float64       `mapstructure:"MARKER_MERGE_KM"`
	PlaceholderPhoto     string        `mapstructure:"PLACEHOLDER_PHOTO"`
}

// DefaultProxyPrefixes are the path prefixes the development proxy forwards
// to the backend.
const DefaultProxyPrefixes = "inmates,photos,llamadas,alerts,auth,api,transcriptions,stream,client,special,fingerprint,analyze_call,photo,llamadas-por-dia"

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()
	return fromViper(v)
}

// FromViper unmarshals an already populated viper instance, applying the
// same defaults as Load. The terminal client binds its flags into v first.
func FromViper(v *viper.Viper) (Config, error) {
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	return cfg, nil
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("BACKEND_URL", "http://localhost:8000")
	v.SetDefault("DEFAULT_PIN", "")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("PROXY_PREFIXES", DefaultProxyPrefixes)
	v.SetDefault("SESSION_IDLE_TIMEOUT", "10m")
	v.SetDefault("DRILLDOWN_PARALLELISM", 4)
	v.SetDefault("UPSTREAM_RPS", 20)
	v.SetDefault("ANALYSIS_MODE", "backend")
	v.SetDefault("MARKER_MERGE_KM", 0)
	v.SetDefault("PLACEHOLDER_PHOTO", "/images/user/user-placeholder.png")
}

func (c Config) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "dev")
}

// MockAnalysis reports whether call analysis should use the offline mock
// enricher instead of the backend.
func (c Config) MockAnalysis() bool {
	return strings.EqualFold(strings.TrimSpace(c.AnalysisMode), "mock")
}

// Prefixes splits PROXY_PREFIXES, dropping blanks and surrounding slashes.
func (c Config) Prefixes() []string {
	var out []string
	for _, p := range strings.Split(c.ProxyPrefixes, ",") {
		p = strings.Trim(strings.TrimSpace(p), "/")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
