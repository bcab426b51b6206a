package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksysoev/htmlidx/pkg/api"
	"github.com/spf13/viper"
)

type appConfig struct {
	Source   SourceConfig   `mapstructure:"source"`
	RawStore RawStoreConfig `mapstructure:"raw_store"`
	Search   SearchConfig   `mapstructure:"search"`
	API      api.Config     `mapstructure:"api"`
}

// SourceConfig configures the offline HTML extraction step and the
// tokenizer shared by indexing and querying.
type SourceConfig struct {
	RootPath  string   `mapstructure:"root_path"`
	URLPrefix string   `mapstructure:"url_prefix"`
	Include   []string `mapstructure:"include"`
	Exclude   []string `mapstructure:"exclude"`
	// Tokenizer selects the word-cutting strategy: "gse" (the default,
	// CJK-capable dictionary segmenter) or "ascii" (dependency-free
	// whitespace/punctuation splitting, for deployments with no CJK
	// content that want to skip loading gse's dictionary).
	Tokenizer string `mapstructure:"tokenizer"`
	// DictPath is a comma-separated list of dictionary file paths passed
	// to the gse segmenter. Empty uses gse's embedded default dictionary.
	DictPath string `mapstructure:"dict_path"`
}

// RawStoreConfig configures where the extracted documents are persisted
// between build and serve.
type RawStoreConfig struct {
	// Backend selects the Store implementation: "local" or "s3".
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	S3Bucket string `mapstructure:"s3_bucket"`
	S3Key    string `mapstructure:"s3_key"`
}

// SearchConfig configures the ranking and snippet extraction behavior.
type SearchConfig struct {
	TitleWeight  int `mapstructure:"title_weight"`
	BodyWeight   int `mapstructure:"body_weight"`
	SnippetPrev  int `mapstructure:"snippet_prev"`
	SnippetAfter int `mapstructure:"snippet_after"`
}

// loadConfig loads the application configuration from the specified file
// path and environment variables, with environment variables taking
// precedence and "." replaced by "_" in their names (e.g.
// SOURCE_ROOT_PATH overrides source.root_path).
func loadConfig(flags *cmdFlags) (*appConfig, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if flags.ConfigPath != "" {
		v.SetConfigFile(flags.ConfigPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg appConfig

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	slog.Debug("Config loaded", slog.Any("config", cfg))

	return &cfg, nil
}
