package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string
	OutputDir  string
	StaticDir  string

	RootURL string

	NotionToken      string
	NotionDatabaseID string
	NotionBaseURL    string
	NotionVersion    string

	// Property names on the Notion database this blog reads.
	DocumentProperty string
	TitleProperty    string
	SlugProperty     string

	CachePath          string
	RevalidateInterval time.Duration
	FetchConcurrency   int
}

// Site is the static metadata rendered into every page, loaded from an
// optional yaml file next to the binary.
type Site struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
}

func Load() Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	return Config{
		ListenAddr: getEnv("BLOG_LISTEN_ADDR", ":8080"),
		OutputDir:  getEnv("BLOG_OUTPUT_DIR", "public"),
		StaticDir:  getEnv("BLOG_STATIC_DIR", "static"),
		RootURL:    strings.TrimRight(os.Getenv("BLOG_ROOT_URL"), "/"),

		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		NotionBaseURL:    os.Getenv("NOTION_BASE_URL"),
		NotionVersion:    os.Getenv("NOTION_VERSION"),

		DocumentProperty: getEnv("BLOG_DOCUMENT_PROPERTY", "Document"),
		TitleProperty:    getEnv("BLOG_TITLE_PROPERTY", "Name"),
		SlugProperty:     getEnv("BLOG_SLUG_PROPERTY", "slug"),

		CachePath:          getEnv("BLOG_CACHE_PATH", ""),
		RevalidateInterval: getEnvDuration("BLOG_REVALIDATE_INTERVAL", 10*time.Minute),
		FetchConcurrency:   getEnvInt("BLOG_FETCH_CONCURRENCY", 4),
	}
}

// LoadSite reads the site metadata file. A missing file falls back to
// defaults; a malformed one is an error.
func LoadSite(path string) (Site, error) {
	site := Site{Title: "Blog"}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return site, nil
		}
		return site, err
	}

	if err := yaml.Unmarshal(raw, &site); err != nil {
		return site, err
	}
	if strings.TrimSpace(site.Title) == "" {
		site.Title = "Blog"
	}

	return site, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}

	return parsed
}
