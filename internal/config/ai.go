package config

import "os"

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Insights is for per-session insight generation (needs to be fast)
	Insights string `json:"insights"`

	// Synthesis is for the self-vs-advisor synthesis pass (quality over speed)
	Synthesis string `json:"synthesis"`

	// FiveInsights is for the five-category strengths classification
	FiveInsights string `json:"fiveInsights"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			// Fast model for interactive generation
			Insights: getEnvOrDefault("GEMINI_MODEL_INSIGHTS", "gemini-2.5-flash-preview-05-20"),

			// Quality models for the deep aggregation passes
			Synthesis:    getEnvOrDefault("GEMINI_MODEL_SYNTHESIS", "gemini-2.0-flash"),
			FiveInsights: getEnvOrDefault("GEMINI_MODEL_FIVE_INSIGHTS", "gemini-2.0-flash"),
		},
		TimeoutMS: 15000, // synthesis prompts are large; allow 15 seconds
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}
