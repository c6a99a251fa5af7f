// Package config carga la configuración del proceso desde un YAML
// (SHELTER_CONFIG, default config.yaml) más overrides por env.
// Se lee una sola vez al arrancar.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"shelter/internal/adapters/auth/jwtbearer"
	"shelter/internal/authz"
	"shelter/internal/domain/inquiries"
	"shelter/internal/domain/pets"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

type AuthMode string

const (
	ModeJwtBearer AuthMode = "JwtBearer"
	ModeAzureAD   AuthMode = "AzureAD"
	ModeNone      AuthMode = "None" // dev: claims por headers X-Debug-*
)

type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type JwtBearer struct {
	SigningKey string `yaml:"signingKey"` // base64
	Issuer     string `yaml:"issuer"`
	Audience   string `yaml:"audience"`
}

type AzureAD struct {
	Instance string `yaml:"instance"`
	TenantID string `yaml:"tenantId"`
	ClientID string `yaml:"clientId"`
	Issuer   string `yaml:"issuer"`
	JwksURL  string `yaml:"jwksUrl"`
}

type Authentication struct {
	Mode      AuthMode       `yaml:"mode"`
	JwtBearer JwtBearer      `yaml:"jwtBearer"`
	AzureAD   AzureAD        `yaml:"azureAD"`
	Policies  []authz.Policy `yaml:"policies"`
}

// Seed son los registros que se cargan en los stores al arrancar.
type Seed struct {
	Pets      []pets.V1      `yaml:"pets"`
	Inquiries []inquiries.V1 `yaml:"inquiries"`
}

type Config struct {
	Server         Server         `yaml:"server"`
	Log            Log            `yaml:"log"`
	Authentication Authentication `yaml:"authentication"`
	Seed           Seed           `yaml:"seed"`
}

// DefaultPolicies son las políticas que usan los recursos pets e inquiries.
func DefaultPolicies() []authz.Policy {
	return []authz.Policy{
		{Name: "Pets.Write", Claim: "Pets.Write", Roles: []string{"Shelter.Staff", "Shelter.Admin"}},
		{Name: "Inquiries.Read", Claim: "Inquiries.Read", Roles: []string{"Shelter.Staff", "Shelter.Admin"}},
		{Name: "Inquiries.Write", Claim: "Inquiries.Write", Roles: []string{"Shelter.Admin"}},
	}
}

func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
			App:    "shelter",
		},
		Authentication: Authentication{
			Mode:     ModeJwtBearer,
			Policies: DefaultPolicies(),
		},
	}
}

// Load lee path (si no existe, usa defaults), aplica env y valida.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// sin archivo: defaults + env
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnv(os.Getenv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv usa SHELTER_CONFIG o DefaultPath.
func LoadFromEnv() (*Config, error) {
	path := strings.TrimSpace(os.Getenv("SHELTER_CONFIG"))
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		c.Log.App = v
	}
	if v := strings.TrimSpace(getenv("AUTH_MODE")); v != "" {
		c.Authentication.Mode = AuthMode(v)
	}
	if v := strings.TrimSpace(getenv("JWT_SIGNING_KEY")); v != "" {
		c.Authentication.JwtBearer.SigningKey = v
	}
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = d.Server.WriteTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Authentication.Mode == "" {
		c.Authentication.Mode = ModeJwtBearer
	}
}

func (c *Config) Validate() error {
	a := c.Authentication
	switch {
	case strings.EqualFold(string(a.Mode), string(ModeJwtBearer)):
		if _, err := jwtbearer.DecodeKey(a.JwtBearer.SigningKey); err != nil {
			return fmt.Errorf("authentication.jwtBearer.signingKey: %w", err)
		}
	case strings.EqualFold(string(a.Mode), string(ModeAzureAD)):
		if strings.TrimSpace(a.AzureAD.TenantID) == "" && strings.TrimSpace(a.AzureAD.JwksURL) == "" {
			return errors.New("authentication.azureAD: tenantId or jwksUrl is required")
		}
	case strings.EqualFold(string(a.Mode), string(ModeNone)):
	default:
		return fmt.Errorf("authentication.mode: unknown mode %q", a.Mode)
	}

	// authz.NewEvaluator hace la misma validación; la corremos acá para
	// fallar al cargar config y no al montar el router.
	if _, err := authz.NewEvaluator(a.Policies); err != nil {
		return fmt.Errorf("authentication.policies: %w", err)
	}
	return nil
}

// IsMode compara sin distinguir mayúsculas (jwtbearer == JwtBearer).
func (c *Config) IsMode(m AuthMode) bool {
	return strings.EqualFold(string(c.Authentication.Mode), string(m))
}
