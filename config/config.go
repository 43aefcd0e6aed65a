// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	App    AppConfig    `mapstructure:"app"`
	Fonts  FontsConfig  `mapstructure:"fonts"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

type AppConfig struct {
	ExportDir       string        `mapstructure:"export_dir"` // пусто = архив выключен
	NudgeStep       float64       `mapstructure:"nudge_step"`
	DefaultText     string        `mapstructure:"default_text"`
	DefaultFontSize int           `mapstructure:"default_font_size"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	RequestTimeout  int           `mapstructure:"request_timeout"` // в секундах
}

// FontsConfig maps a family name to font files keyed by CSS weight ("400", "700").
type FontsConfig struct {
	Families map[string]map[string]string `mapstructure:"families"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Printf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("app.nudge_step", 10.0)
	v.SetDefault("app.default_text", "新しいテキスト")
	v.SetDefault("app.default_font_size", 300)
	v.SetDefault("app.max_upload_bytes", 32<<20)
	v.SetDefault("app.session_ttl", 2*time.Hour)
	v.SetDefault("app.sweep_interval", 5*time.Minute)
	v.SetDefault("app.cache_ttl", 10*time.Minute)
	v.SetDefault("app.request_timeout", 30)

	v.SetDefault("kafka.topic", "catchcraft-exports")
	v.SetDefault("kafka.group_id", "catchcraft-export-log")
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
