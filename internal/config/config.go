package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Grok     GrokConfig
	Agent    AgentConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string // empty disables the analytics database
}

type GrokConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type AgentConfig struct {
	SessionTTL        time.Duration
	MinScore          float64 // below this, classification is unknown
	LowConfidence     float64 // below this, synthesis delegates to the LLM
	SectionBudget     int
	TotalBudget       int
	MaxGlossaryTerms  int
	PolicyStep        float64
	PolicyMinWeight   float64
	PolicyMaxWeight   float64
	FeedbackTopicName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/law_agent.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Grok: GrokConfig{
			APIKey:  getEnv("GROK_API_KEY", ""),
			Model:   getEnv("GROK_MODEL", "grok-beta"),
			Timeout: getEnvAsDuration("GROK_TIMEOUT", 30*time.Second),
		},
		Agent: AgentConfig{
			SessionTTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			MinScore:          getEnvAsFloat("CLASSIFIER_MIN_SCORE", 0.3),
			LowConfidence:     getEnvAsFloat("SYNTH_LOW_CONFIDENCE", 0.3),
			SectionBudget:     getEnvAsInt("SYNTH_SECTION_BUDGET", 400),
			TotalBudget:       getEnvAsInt("SYNTH_TOTAL_BUDGET", 800),
			MaxGlossaryTerms:  getEnvAsInt("GLOSSARY_MAX_TERMS", 5),
			PolicyStep:        getEnvAsFloat("POLICY_STEP", 0.05),
			PolicyMinWeight:   getEnvAsFloat("POLICY_MIN_WEIGHT", 0.1),
			PolicyMaxWeight:   getEnvAsFloat("POLICY_MAX_WEIGHT", 10),
			FeedbackTopicName: getEnv("FEEDBACK_TOPIC_NAME", "FEEDBACK_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
