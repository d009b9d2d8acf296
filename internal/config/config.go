package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr  string
	DatabaseURL string
	JWTSecret   string

	// S3 storage for post images and avatars
	AWSRegion          string
	AWSBucket          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Init loads the config using Viper and returns it
func Init() *Config {
	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("AWS_REGION", "eu-west-3")
	// DATABASE_URL, JWT_SECRET and the AWS credentials have no defaults

	viper.AutomaticEnv()

	// Optional config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	_ = viper.ReadInConfig() // ignore error if no file

	return &Config{
		ServerAddr:         viper.GetString("SERVER_ADDR"),
		DatabaseURL:        viper.GetString("DATABASE_URL"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		AWSRegion:          viper.GetString("AWS_REGION"),
		AWSBucket:          viper.GetString("AWS_BUCKET_NAME"),
		AWSAccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
	}
}
