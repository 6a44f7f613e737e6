package pkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the configuration for the application
type Config struct {
	ENV                 string        `mapstructure:"ENV"`
	AccountsServiceURL  string        `mapstructure:"ACCOUNTS_SERVICE_URL"`
	CardsServiceURL     string        `mapstructure:"CARDS_SERVICE_URL"`
	PaymentsServiceURL  string        `mapstructure:"PAYMENTS_SERVICE_URL"`
	HttpServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	HttpClientTimeout   time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`
	SymmetricKey        string        `mapstructure:"SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
}

// LoadConfig loads the configuration from the file
func LoadConfig(path string) (config Config, err error) {
	if path == "" {
		path = "." // Default to current directory if no path is provided
	}
	viper.AddConfigPath(path)
	viper.SetConfigName(".env") // Set the config name to ".env" without the extension
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
