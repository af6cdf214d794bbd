package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "config/local.yaml"

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Discount struct {
	// NthOrder is the order-count interval at which a new code is generated.
	NthOrder int `yaml:"NTH_ORDER" env:"DISCOUNT_NTH_ORDER" env-default:"3"`
}

type Payment struct {
	Delay       time.Duration `yaml:"DELAY" env:"PAYMENT_DELAY" env-default:"100ms"`
	SuccessRate float64       `yaml:"SUCCESS_RATE" env:"PAYMENT_SUCCESS_RATE" env-default:"0.95"`
}

type Security struct {
	AdminJWTKey string `yaml:"ADMIN_JWT_KEY" env:"ADMIN_JWT_KEY" env-default:""`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"ecommerce-discount-demo"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Discount   Discount `yaml:"discount"`
	Payment    Payment  `yaml:"payment"`
	Security   Security `yaml:"security"`
	Otel       Otel     `yaml:"otel"`
}

// MustLoad resolves the config path from CONFIG_PATH, the -config flag or the
// default location, and exits the process when the file cannot be read.
func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = defaultConfigPath
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Discount.NthOrder < 1 {
		return fmt.Errorf("discount.NTH_ORDER must be at least 1, got %d", c.Discount.NthOrder)
	}

	if c.Payment.SuccessRate < 0 || c.Payment.SuccessRate > 1 {
		return fmt.Errorf("payment.SUCCESS_RATE must be within [0, 1], got %v", c.Payment.SuccessRate)
	}

	if c.Payment.Delay < 0 {
		return fmt.Errorf("payment.DELAY must not be negative, got %s", c.Payment.Delay)
	}

	return nil
}

func (o *Otel) Enabled() bool {
	return o.ExporterEndpoint != ""
}
