package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// AppConfig holds every setting the application needs. It is built once in
// Load and passed into constructors; components never read the environment
// themselves.
type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`

	GeminiModel string `yaml:"gemini_model"`

	// APITimeoutSeconds bounds every outbound provider call (search, scrape,
	// LLM). 0 or below falls back to 60.
	APITimeoutSeconds int `yaml:"api_timeout_seconds"`

	MaxSearchResults int `yaml:"max_search_results"`
	MaxScrapeURLs    int `yaml:"max_scrape_urls"`

	Kafka KafkaConfig `yaml:"kafka"`

	// Secrets and connection strings come from the environment, not YAML.
	GeminiAPIKey    string `yaml:"-"`
	SerperAPIKey    string `yaml:"-"`
	FirecrawlAPIKey string `yaml:"-"`
	MongoURI        string `yaml:"-"`
	DatabaseName    string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// KafkaConfig enables optional lifecycle event publishing. Empty brokers
// means events are disabled.
type KafkaConfig struct {
	Brokers     string `yaml:"brokers"`
	TopicPrefix string `yaml:"topic_prefix"`
}

// Load reads .env and config.yaml from the repository root and returns the
// assembled configuration.
func Load() (AppConfig, error) {
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		return c, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
	}

	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.SerperAPIKey = os.Getenv("SERPER_API_KEY")
	c.FirecrawlAPIKey = os.Getenv("FIRECRAWL_API_KEY")
	c.MongoURI = os.Getenv("MONGODB_URI")
	c.DatabaseName = os.Getenv("DATABASE_NAME")

	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Kafka.Brokers = v
	}

	c.applyDefaults()
	return c, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
			c.Server.Port = v
		} else {
			c.Server.Port = 8000
		}
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	if c.APITimeoutSeconds <= 0 {
		c.APITimeoutSeconds = 60
	}
	if c.MaxSearchResults <= 0 {
		c.MaxSearchResults = 10
	}
	if c.MaxScrapeURLs <= 0 {
		c.MaxScrapeURLs = 5
	}
	if c.MongoURI == "" {
		c.MongoURI = "mongodb://localhost:27017/"
	}
	if c.DatabaseName == "" {
		c.DatabaseName = "startup_validator"
	}
	if c.Kafka.TopicPrefix == "" {
		c.Kafka.TopicPrefix = "validator"
	}
}

// APITimeout returns the per-call timeout as a duration.
func (c AppConfig) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// Addr returns the host:port pair the HTTP server listens on.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetBasePath walks up from the working directory until it finds the
// directory containing config.yaml.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
