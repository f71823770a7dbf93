package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderAzure  = "azure"
	ProviderGemini = "gemini"

	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Azure     AzureOpenAIConfig
	Gemini    GeminiConfig
	Evaluator EvaluatorConfig
	Storage   StorageConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LLMConfig struct {
	Provider string
}

type AzureOpenAIConfig struct {
	APIKey     string
	Endpoint   string
	APIVersion string
	Deployment string
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	JudgeModel string
}

type EvaluatorConfig struct {
	Enabled bool
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type SessionConfig struct {
	Store      string
	CookieName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables only.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "recruitment_assistant"),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderAzure)),
		},
		Azure: AzureOpenAIConfig{
			APIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
			Endpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIVersion: getEnv("AZURE_OPENAI_API_VERSION", ""),
			Deployment: getEnv("AZURE_OPENAI_DEPLOYMENT_NAME", ""),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			JudgeModel: getEnv("JUDGE_MODEL", "gemini-2.5-flash"),
		},
		Evaluator: EvaluatorConfig{
			Enabled: getEnvAsBool("EVALUATOR_ENABLED", true),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			Store:      strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
			CookieName: getEnv("SESSION_COOKIE", "recruit_session"),
		},
	}
}

// Validate reports every missing required setting in one error.
func (c *Config) Validate() error {
	var missing []string

	switch c.LLM.Provider {
	case ProviderAzure:
		if c.Azure.APIKey == "" {
			missing = append(missing, "AZURE_OPENAI_API_KEY")
		}
		if c.Azure.Endpoint == "" {
			missing = append(missing, "AZURE_OPENAI_ENDPOINT")
		}
		if c.Azure.APIVersion == "" {
			missing = append(missing, "AZURE_OPENAI_API_VERSION")
		}
		if c.Azure.Deployment == "" {
			missing = append(missing, "AZURE_OPENAI_DEPLOYMENT_NAME")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER %q: expected %q or %q", c.LLM.Provider, ProviderAzure, ProviderGemini)
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStorePostgres:
	default:
		return fmt.Errorf("invalid SESSION_STORE %q: expected %q or %q", c.Session.Store, SessionStoreMemory, SessionStorePostgres)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
