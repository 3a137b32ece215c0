package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	Currency string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CURRENCY", "INR")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "storagedb")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Port:     viper.GetString("PORT"),
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
			Currency: viper.GetString("CURRENCY"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASS"),
			DB:         viper.GetInt("REDIS_DB"),
			TTLSeconds: viper.GetInt("CACHE_TTL_SECONDS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     viper.GetString("RAZORPAY_KEY_ID"),
			KeySecret: viper.GetString("RAZORPAY_KEY_SECRET"),
		},
	}

	return config, nil
}
