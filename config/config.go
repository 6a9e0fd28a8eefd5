package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Postgres     PostgresConfig     `mapstructure:"postgres"`
	SessionRedis SessionRedisConfig `mapstructure:"sessionredis"`
	RoomRedis    RoomRedisConfig    `mapstructure:"roomredis"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Host        string `mapstructure:"host"`
	Description string `mapstructure:"description"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type SessionRedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RoomRedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

func Read() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")
	viper.AddConfigPath("/")

	// Defaults
	viper.SetDefault("app.name", "lobby-service")
	viper.SetDefault("server.port", "8083")
	viper.SetDefault("server.host", "0.0.0.0")

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.user", "myuser")
	viper.SetDefault("postgres.password", "mypassword")
	viper.SetDefault("postgres.db", "lobbydb")

	viper.SetDefault("sessionredis.host", "localhost")
	viper.SetDefault("sessionredis.port", "6379")
	viper.SetDefault("sessionredis.db", 0)

	viper.SetDefault("roomredis.host", "localhost")
	viper.SetDefault("roomredis.port", "6379")
	viper.SetDefault("roomredis.db", 1)

	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "lobby-events")

	// ENV overrides with prefix LOBBY_ and dot-to-underscore replacement
	viper.SetEnvPrefix("LOBBY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}

	return config
}
