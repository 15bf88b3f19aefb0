package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPHost           = "0.0.0.0"
	defaultHTTPPort           = 8000

	defaultTokenAlgorithm    = "HS256"
	defaultAccessTTL         = 30 * time.Minute
	defaultRefreshTTL        = 7 * 24 * time.Hour
	defaultAdminCheckTimeout = 2 * time.Second

	defaultPasswordMinLength = 6
	defaultPasswordMaxLength = 72
)

// SupportedTokenAlgorithms are the HMAC methods a token secret may sign with.
var SupportedTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Token TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	Migration MigrationConfig `json:"migration" yaml:"migration"`

	// AdminSeed provisions one admin on startup when all fields are set.
	AdminSeed *AdminSeedConfig `json:"adminSeed" yaml:"adminSeed"`
}

// TokenConfig holds the signing secret and lifetimes of bearer tokens.
type TokenConfig struct {
	Secret     string        `json:"-" yaml:"secret"`
	Algorithm  string        `json:"algorithm" yaml:"algorithm"`
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	Issuer     string        `json:"issuer" yaml:"issuer"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AdminCheckTimeout time.Duration `json:"adminCheckTimeout" yaml:"adminCheckTimeout"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

// MigrationConfig toggles goose migrations on startup.
type MigrationConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// AdminSeedConfig is the bootstrap admin account.
type AdminSeedConfig struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"-" yaml:"password"`
}

// Enabled reports whether every seed field is set.
func (c *AdminSeedConfig) Enabled() bool {
	return c != nil &&
		strings.TrimSpace(c.Username) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		c.Password != ""
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// TOKEN_ACCESSTTL -> token.accessTTL, aligned with the YAML tree.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A local .env is optional; real deployments inject the environment.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := applyLegacyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the token service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token.Secret) == "" {
		return errors.New("token.secret must be provided")
	}

	if !isSupportedAlgorithm(c.Token.Algorithm) {
		return errors.Errorf("token.algorithm %q is not supported, use one of %s",
			c.Token.Algorithm, strings.Join(SupportedTokenAlgorithms, ", "))
	}

	if c.Token.AccessTTL <= 0 || c.Token.RefreshTTL <= 0 {
		return errors.New("token ttl values must be positive")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = defaultHTTPHost
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Token.Algorithm == "" {
		cfg.Token.Algorithm = defaultTokenAlgorithm
	}
	cfg.Token.Algorithm = strings.ToUpper(cfg.Token.Algorithm)
	if cfg.Token.AccessTTL == 0 {
		cfg.Token.AccessTTL = defaultAccessTTL
	}
	if cfg.Token.RefreshTTL == 0 {
		cfg.Token.RefreshTTL = defaultRefreshTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Auth.AdminCheckTimeout == 0 {
		cfg.Auth.AdminCheckTimeout = defaultAdminCheckTimeout
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.PasswordStrength.MinLength == 0 {
		cfg.PasswordStrength.MinLength = defaultPasswordMinLength
	}
	if cfg.PasswordStrength.MaxLength == 0 {
		cfg.PasswordStrength.MaxLength = defaultPasswordMaxLength
	}
}

func isSupportedAlgorithm(alg string) bool {
	for _, supported := range SupportedTokenAlgorithms {
		if strings.EqualFold(alg, supported) {
			return true
		}
	}

	return false
}

// legacyEnv maps variable names of earlier deployments onto token settings.
// A legacy value applies only when its canonical variable is unset.
var legacyEnv = []struct {
	name      string
	canonical string
	apply     func(cfg *Config, value string) error
}{
	{
		name:      "JWT_SECRET_KEY",
		canonical: "TOKEN_SECRET",
		apply: func(cfg *Config, value string) error {
			cfg.Token.Secret = value

			return nil
		},
	},
	{
		name:      "ALGORITHM",
		canonical: "TOKEN_ALGORITHM",
		apply: func(cfg *Config, value string) error {
			cfg.Token.Algorithm = value

			return nil
		},
	},
	{
		name:      "ACCESS_TOKEN_EXPIRE_MINUTES",
		canonical: "TOKEN_ACCESSTTL",
		apply: func(cfg *Config, value string) error {
			minutes, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return errors.Wrap(err, "parse ACCESS_TOKEN_EXPIRE_MINUTES")
			}
			cfg.Token.AccessTTL = time.Duration(minutes) * time.Minute

			return nil
		},
	},
	{
		name:      "REFRESH_TOKEN_EXPIRE_DAYS",
		canonical: "TOKEN_REFRESHTTL",
		apply: func(cfg *Config, value string) error {
			days, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return errors.Wrap(err, "parse REFRESH_TOKEN_EXPIRE_DAYS")
			}
			cfg.Token.RefreshTTL = time.Duration(days) * 24 * time.Hour

			return nil
		},
	},
}

func applyLegacyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, legacy := range legacyEnv {
		if _, ok := lookup(legacy.canonical); ok {
			continue
		}

		value, ok := lookup(legacy.name)
		if !ok || value == "" {
			continue
		}

		if err := legacy.apply(cfg, value); err != nil {
			return err
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
