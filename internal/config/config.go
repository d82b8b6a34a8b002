package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/config"
)

type (
	Config struct {
		ConfigName string           `mapstructure:"config_name" validate:"required"`
		Server     ServerConfig     `mapstructure:"server"`
		Agent      AgentConfig      `mapstructure:"agent"`
		Compliance ComplianceConfig `mapstructure:"compliance"`
		Tracer     TracerConfig     `mapstructure:"tracer"`

		env Env
	}

	ServerConfig struct {
		BindAddress       string        `mapstructure:"bind_address" validate:"required"`
		ServiceName       string        `mapstructure:"service_name"`
		RoutePrefix       string        `mapstructure:"route_prefix" validate:"omitempty,startswith=/"`
		ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"required"`
		ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
		MaxRequestSize    int64         `mapstructure:"max_request_size" validate:"required,min=1"`
	}

	AgentConfig struct {
		// Chain is the chain reported by the blockchain data agent.
		Chain string `mapstructure:"chain" validate:"required"`
		// Seed of the random source shared by the agents. Zero seeds from the wall clock.
		Seed   int64       `mapstructure:"seed"`
		Delays DelayConfig `mapstructure:"delays"`
	}

	// DelayConfig is the simulated processing time of each agent.
	DelayConfig struct {
		BlockchainData       time.Duration `mapstructure:"blockchain_data" validate:"min=0"`
		PathReconstruction   time.Duration `mapstructure:"path_reconstruction" validate:"min=0"`
		ObfuscationDetection time.Duration `mapstructure:"obfuscation_detection" validate:"min=0"`
		RiskAssessment       time.Duration `mapstructure:"risk_assessment" validate:"min=0"`
	}

	ComplianceConfig struct {
		InvestigationThreshold int `mapstructure:"investigation_threshold" validate:"min=1,max=100"`
		MonitorThreshold       int `mapstructure:"monitor_threshold" validate:"min=0,ltfield=InvestigationThreshold"`
		// MultiChainThreshold is the number of distinct chains above which a multi-chain analysis is recommended.
		MultiChainThreshold int `mapstructure:"multi_chain_threshold" validate:"min=0"`
	}

	TracerConfig struct {
		Enabled      bool   `mapstructure:"enabled"`
		AgentAddress string `mapstructure:"agent_address" validate:"required_if=Enabled true"`
	}

	ConfigOption func(options *configOptions)

	Env string

	configOptions struct {
		Env Env `validate:"required,oneof=production development local"`
	}

	// derivedConfig defines a callback where a config struct can override its fields based on the global config.
	derivedConfig interface {
		DeriveConfig(cfg *Config)
	}
)

const (
	EnvVarEnvironment = "CHAINTRACE_ENVIRONMENT"
	EnvVarTestType    = "TEST_TYPE"

	Namespace = "chaintrace"

	EnvBase        Env = "base"
	EnvLocal       Env = "local"
	EnvProduction  Env = "production"
	EnvDevelopment Env = "development"

	defaultServiceNameFormat = "%v transaction trace agent"

	tagEnv        = "env"
	tagConfigName = "config_name"
)

var (
	_ derivedConfig = (*ServerConfig)(nil)
	_ derivedConfig = (*TracerConfig)(nil)
)

func New(opts ...ConfigOption) (*Config, error) {
	validate := validator.New()

	configOpts := getConfigOptions(opts...)
	if err := validate.Struct(configOpts); err != nil {
		return nil, xerrors.Errorf("failed to validate config options: %w", err)
	}

	configReader, err := getConfigData(Namespace, EnvBase)
	if err != nil {
		return nil, xerrors.Errorf("failed to locate config file: %w", err)
	}

	cfg := Config{
		env: configOpts.Env,
	}

	v := viper.New()
	v.SetConfigName(string(EnvBase))
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	v.SetEnvPrefix("CHAINTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read the data in base.yml
	if err := v.ReadConfig(configReader); err != nil {
		return nil, xerrors.Errorf("failed to read config: %w", err)
	}

	// Merge in the env-specific config, such as development.yml
	if err := mergeInConfig(v, configOpts.Env); err != nil {
		return nil, xerrors.Errorf("failed to merge in %v config: %w", configOpts.Env, err)
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, xerrors.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.setDerivedConfigs(reflect.ValueOf(&cfg))

	if err := validate.Struct(&cfg); err != nil {
		return nil, xerrors.Errorf("failed to validate config: %w", err)
	}

	return &cfg, nil
}

func mergeInConfig(v *viper.Viper, env Env) error {
	// Merge in the env-specific config if available.
	if configReader, err := getConfigData(Namespace, env); err == nil {
		v.SetConfigName(string(env))
		if err := v.MergeConfig(configReader); err != nil {
			return xerrors.Errorf("failed to merge config %v: %w", env, err)
		}
	}
	return nil
}

func (c *Config) Env() Env {
	return c.env
}

func (c *Config) GetCommonTags() map[string]string {
	return map[string]string{
		tagEnv:        string(c.Env()),
		tagConfigName: c.ConfigName,
	}
}

func (c *Config) IsTest() bool {
	return os.Getenv(EnvVarTestType) != ""
}

// setDerivedConfigs recursively calls DeriveConfig on all the derivedConfig.
func (c *Config) setDerivedConfigs(v reflect.Value) {
	if v.CanInterface() {
		if oc, ok := v.Interface().(derivedConfig); ok {
			oc.DeriveConfig(c)
			return
		}
	}

	elem := v.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if field.Kind() == reflect.Struct {
			c.setDerivedConfigs(field.Addr())
		}
	}
}

func getConfigOptions(opts ...ConfigOption) *configOptions {
	env := Env(os.Getenv(EnvVarEnvironment))
	if env == "" {
		env = EnvLocal
	}

	configOpts := &configOptions{
		Env: env,
	}

	for _, opt := range opts {
		opt(configOpts)
	}
	return configOpts
}

func getConfigData(namespace string, env Env) (io.Reader, error) {
	configPath := fmt.Sprintf("%v/%v.yml", namespace, env)
	return config.Store.Open(configPath)
}

func WithEnvironment(env Env) ConfigOption {
	return func(opts *configOptions) {
		opts.Env = env
	}
}

func (c *ServerConfig) DeriveConfig(cfg *Config) {
	if c.ServiceName == "" {
		c.ServiceName = fmt.Sprintf(defaultServiceNameFormat, cfg.ConfigName)
	}

	c.RoutePrefix = strings.TrimSuffix(c.RoutePrefix, "/")
}

func (c *TracerConfig) DeriveConfig(cfg *Config) {
	if cfg.IsTest() {
		// No datadog agent is reachable from tests.
		c.Enabled = false
	}
}
