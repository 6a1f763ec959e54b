package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Stripe   StripeConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type JWTConfig struct {
	Secret     string
	ExpiryDays int
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_NAME", "godeshdb")
	viper.SetDefault("TOKEN_EXPIRY_DAYS", 7)
	viper.SetDefault("CURRENCY", "usd")

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
			URI:  viper.GetString("MONGODB_URI"),
			Name: viper.GetString("DB_NAME"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("ACCESS_TOKEN_SECRET"),
			ExpiryDays: viper.GetInt("TOKEN_EXPIRY_DAYS"),
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SK"),
			Currency:  viper.GetString("CURRENCY"),
		},
	}

	return config, nil
}
