package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOpenAI,
		Model:             "gpt-4o-mini",
		Temperature:       0.7,
		MaxTokens:         1000,
		MinQueryLength:    3,
		MaxQueryLength:    2000,
		EnableRetrieval:   false,
		KnowledgeBasePath: "data/faq.jsonl",
		TopK:              3,
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
	}
}
