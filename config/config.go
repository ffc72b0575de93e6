package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Entity store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB     int           `mapstructure:"REDIS_QUEUE_DB"`
	ProviderCacheTTL time.Duration `mapstructure:"PROVIDER_CACHE_TTL"`

	// Allocation scoring. The tunables are pointers so an explicit 0 is
	// kept apart from an unset key.
	ScoringScheme string `mapstructure:"SCORING_SCHEME"`

	WeightedAlternates    *int     `mapstructure:"WEIGHTED_ALTERNATES"`
	WeightedFallbackLangs []string `mapstructure:"WEIGHTED_FALLBACK_LANGUAGES"`
	WeightedAvailability  *float64 `mapstructure:"WEIGHTED_AVAILABILITY_POINTS"`
	WeightedUnknownLocPts *float64 `mapstructure:"WEIGHTED_UNKNOWN_LOCATION_POINTS"`
	PriorityAlternates    *int     `mapstructure:"PRIORITY_ALTERNATES"`
	PriorityLocationMult  *float64 `mapstructure:"PRIORITY_LOCATION_MULTIPLIER"`
	PriorityAvailMult     *float64 `mapstructure:"PRIORITY_AVAILABILITY_MULTIPLIER"`
	PriorityRatingMult    *float64 `mapstructure:"PRIORITY_RATING_MULTIPLIER"`
	PriorityVerifiedBonus *float64 `mapstructure:"PRIORITY_VERIFIED_BONUS"`
	PriorityExpPerYear    *float64 `mapstructure:"PRIORITY_EXPERIENCE_PER_YEAR"`
	PriorityExpCap        *float64 `mapstructure:"PRIORITY_EXPERIENCE_CAP"`
	PriorityDefaultRating *float64 `mapstructure:"PRIORITY_DEFAULT_RATING"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "templeseva")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("PROVIDER_CACHE_TTL", "2m")

	v.SetDefault("SCORING_SCHEME", "weighted")
	v.SetDefault("WEIGHTED_ALTERNATES", 4)
	v.SetDefault("WEIGHTED_FALLBACK_LANGUAGES", []string{"hindi", "english"})
	v.SetDefault("WEIGHTED_AVAILABILITY_POINTS", 20)
	v.SetDefault("WEIGHTED_UNKNOWN_LOCATION_POINTS", 15)
	v.SetDefault("PRIORITY_ALTERNATES", 3)
	v.SetDefault("PRIORITY_LOCATION_MULTIPLIER", 3)
	v.SetDefault("PRIORITY_AVAILABILITY_MULTIPLIER", 2)
	v.SetDefault("PRIORITY_RATING_MULTIPLIER", 1)
	v.SetDefault("PRIORITY_VERIFIED_BONUS", 20)
	v.SetDefault("PRIORITY_EXPERIENCE_PER_YEAR", 2)
	v.SetDefault("PRIORITY_EXPERIENCE_CAP", 30)
	v.SetDefault("PRIORITY_DEFAULT_RATING", 4.0)
}

// Load reads configuration from an optional config.yaml and the environment.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
