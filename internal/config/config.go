package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	DBUrl         string `mapstructure:"DB_URL"`          // empty -> in-memory stores
	Port          string `mapstructure:"PORT"`            // default 8080
	OTPStaticCode string `mapstructure:"OTP_STATIC_CODE"` // non-empty pins every OTP (demo mode)
}

func LoadConfig() Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, using env variables only")
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal("config unmarshal error:", err)
	}

	return c
}
