package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the banner API server.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the storage connection.
	Redis RedisConfig `mapstructure:",squash"`

	// Banner holds banner defaults and policy.
	Banner BannerConfig `mapstructure:",squash"`

	// CSRF holds anti-forgery settings.
	CSRF CSRFConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection URL.
type RedisConfig struct {
	// URL is in the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// BannerConfig holds banner rendering defaults and plan policy.
type BannerConfig struct {
	// StaticURL is the asset root that relative image paths are rooted under.
	StaticURL string `mapstructure:"STATIC_URL" default:"/static/"`
	// DefaultColor is served for memorials that never chose a banner.
	DefaultColor string `mapstructure:"BANNER_DEFAULT_COLOR" default:"#f7e8c9"`
	// EnforcePlan rejects changes for memorials whose plan lacks custom banners.
	EnforcePlan bool `mapstructure:"BANNER_ENFORCE_PLAN" default:"false"`
}

// CSRFConfig holds anti-forgery cookie settings.
type CSRFConfig struct {
	// CookieSecure marks the token cookie Secure.
	CookieSecure bool `mapstructure:"CSRF_COOKIE_SECURE" default:"false"`
}

// ClientConfig holds the configuration for bannerctl.
type ClientConfig struct {
	Environment string `mapstructure:"APP_ENV" default:"development"`
	LogLevel    string `mapstructure:"LOG_LEVEL" default:"warn"`
	// APIURL is the base URL of the banner API server.
	APIURL string `mapstructure:"BANNER_API_URL" required:"true"`
	// StaticURL must match the server's asset root.
	StaticURL string `mapstructure:"STATIC_URL" default:"/static/"`
	// CSRFToken is sent as X-CSRFToken. When empty bannerctl fetches one.
	CSRFToken string `mapstructure:"CSRF_TOKEN"`
	// TimeoutSeconds bounds every HTTP request.
	TimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the HTTP timeout as a duration.
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load loads the server configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	var config AppConfig
	if err := load(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadClient loads the bannerctl configuration the same way as Load.
func LoadClient(path string) (*ClientConfig, error) {
	var config ClientConfig
	if err := load(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func load(path string, target interface{}) error {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := processTags(v, target); err != nil {
		return err
	}

	if err := v.Unmarshal(target); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}

	return validateRequired(target)
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
