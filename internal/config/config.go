package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	OrderDB      `yaml:"order_db"`
	LogConfig    `yaml:"log_config"`
	Razorpay     `yaml:"razorpay"`
	KafkaService `yaml:"kafka-service"`
	Pricing      `yaml:"pricing"`
	AdminAPI     `yaml:"admin_api"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Razorpay struct {
	KeyID     string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	BaseURL   string `yaml:"base_url" env-default:"https://api.razorpay.com"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type Pricing struct {
	BookPrice    float64 `yaml:"book_price" env-default:"350"`
	ShippingCost float64 `yaml:"shipping_cost" env-default:"50"`
	Currency     string  `yaml:"currency" env-default:"INR"`
	BookTitle    string  `yaml:"book_title" env-default:"മാത്രുതികമുകിൽ"`
}

type AdminAPI struct {
	Token string `yaml:"token" env:"ADMIN_API_TOKEN"`
}

func MustLoad() *OrderConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ORDER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
