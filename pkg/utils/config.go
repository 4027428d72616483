package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	SearchTTLMins int
}

type KafkaConfig struct {
	Brokers      string
	BookingTopic string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_SEARCH_TTL_MINUTES", 5)
	viper.SetDefault("KAFKA_BOOKING_TOPIC", "booking-events")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:          viper.GetString("REDIS_ADDR"),
			Password:      viper.GetString("REDIS_PASS"),
			DB:            viper.GetInt("REDIS_DB"),
			SearchTTLMins: viper.GetInt("REDIS_SEARCH_TTL_MINUTES"),
		},
		Kafka: KafkaConfig{
			Brokers:      viper.GetString("KAFKA_BROKERS"),
			BookingTopic: viper.GetString("KAFKA_BOOKING_TOPIC"),
		},
	}

	return config, nil
}

// KafkaBrokerList splits the comma-separated KAFKA_BROKERS value.
// Empty result means event publishing is disabled.
func (c *Config) KafkaBrokerList() []string {
	if c.Kafka.Brokers == "" {
		return nil
	}

	parts := strings.Split(c.Kafka.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}

	return brokers
}
