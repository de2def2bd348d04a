package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level ragline configuration, corresponding to .ragline.yml.
type Config struct {
	Provider    ProviderType `yaml:"provider" koanf:"provider"`
	Model       string       `yaml:"model" koanf:"model"`
	Temperature float64      `yaml:"temperature" koanf:"temperature"`
	MaxTokens   int          `yaml:"max_tokens" koanf:"max_tokens"`

	MinQueryLength int `yaml:"min_query_length" koanf:"min_query_length"`
	MaxQueryLength int `yaml:"max_query_length" koanf:"max_query_length"`

	EnableRetrieval   bool   `yaml:"enable_retrieval" koanf:"enable_retrieval"`
	KnowledgeBasePath string `yaml:"knowledge_base_path" koanf:"knowledge_base_path"`
	TopK              int    `yaml:"top_k" koanf:"top_k"`

	Server ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
