// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	GuestStore struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"guest_store"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		// Timezone は端末タイムゾーン名 (例: Asia/Tokyo)。
		// 空の場合は実行環境のローカルタイムゾーンを解決します。
		Timezone string `mapstructure:"timezone"`
	} `mapstructure:"app"`
	// Backend はバックエンドストアの利用可否 (ケーパビリティフラグ)。
	// 無効の場合、習得状態の取得と連続学習記録は決定的なno-opになります。
	Backend struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"backend"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("backend.enabled", "BACKEND_ENABLED")
	viper.BindEnv("app.timezone", "APP_TIMEZONE")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.GuestStore.Path == "" {
		log.Printf("Guest store path not set, using default '%s'", DefaultGuestStorePath)
		Cfg.GuestStore.Path = DefaultGuestStorePath
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Backend.Enabled のデフォルトは「データベースURLが設定されているか」。
	// 明示的に設定されていればそれを尊重する。
	if !viper.IsSet("backend.enabled") {
		Cfg.Backend.Enabled = Cfg.Database.URL != ""
		log.Printf("Backend enabled flag not set, deriving from database URL: %t", Cfg.Backend.Enabled)
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Backend Enabled: %t", Cfg.Backend.Enabled)
	log.Printf("Timezone: %q", Cfg.App.Timezone)

	return nil
}
