package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config - структура для хранения конфигураций приложения
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	PostgresUser  string `mapstructure:"POSTGRES_USERNAME"`
	PostgresPass  string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresHost  string `mapstructure:"POSTGRES_HOST"`
	PostgresPort  string `mapstructure:"POSTGRES_PORT"`
	PostgresDB    string `mapstructure:"POSTGRES_DATABASE"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`

	// Параметры политики ротации хранилища.
	RotationInterval     time.Duration `mapstructure:"ROTATION_INTERVAL"`
	SweepInterval        time.Duration `mapstructure:"SWEEP_INTERVAL"`
	RotationBatchMin     int           `mapstructure:"ROTATION_BATCH_MIN"`
	RotationBatchMax     int           `mapstructure:"ROTATION_BATCH_MAX"`
	DisplayDurationHours int           `mapstructure:"DISPLAY_DURATION_HOURS"`
	CooldownDays         int           `mapstructure:"COOLDOWN_DAYS"`
	MaxUsageDefault      int           `mapstructure:"MAX_USAGE_DEFAULT"`
	PublicIdMaxAttempts  int           `mapstructure:"PUBLIC_ID_MAX_ATTEMPTS"`
}

// LoadConfig загружает конфигурацию из файла
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("ROTATION_INTERVAL", 24*time.Hour)
	viper.SetDefault("SWEEP_INTERVAL", time.Hour)
	viper.SetDefault("ROTATION_BATCH_MIN", 30)
	viper.SetDefault("ROTATION_BATCH_MAX", 70)
	viper.SetDefault("DISPLAY_DURATION_HOURS", 12)
	viper.SetDefault("COOLDOWN_DAYS", 60)
	viper.SetDefault("MAX_USAGE_DEFAULT", 4)
	viper.SetDefault("PUBLIC_ID_MAX_ATTEMPTS", 10)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
	err = viper.Unmarshal(&cfg)
	return
}
