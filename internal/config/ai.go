package config

import (
	"os"
	"strconv"
)

// ModelPricing holds per-million-token prices for one model family.
type ModelPricing struct {
	InputPerMillion  float64 `json:"inputPerMillion"`
	OutputPerMillion float64 `json:"outputPerMillion"`
}

// AIConfig holds all AI-related configuration. It is resolved once at
// startup and injected; nothing reads the environment at call time.
type AIConfig struct {
	APIKey  string `json:"-"` // Never serialize
	BaseURL string `json:"baseUrl"`
	Model   string `json:"model"`

	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
	TimeoutMS   int     `json:"timeoutMs"`

	// Pricing per model family. A model name containing "haiku" bills at
	// the fast rate, everything else at the default rate.
	FastPricing    ModelPricing `json:"fastPricing"`
	DefaultPricing ModelPricing `json:"defaultPricing"`

	// Truncation limits applied when prompt/response text is written to
	// the invocation log.
	PromptLogMax   int `json:"promptLogMax"`
	ResponseLogMax int `json:"responseLogMax"`

	// RiskThresholds maps metric IDs to the score above which the
	// corresponding risk flag is raised.
	RiskThresholds map[string]int `json:"riskThresholds"`
}

// DefaultAIConfig returns the AI configuration from the environment.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:      os.Getenv("ANTHROPIC_API_KEY"),
		BaseURL:     getEnvOrDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		Model:       getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20240620"),
		MaxTokens:   getEnvIntOrDefault("AI_MAX_TOKENS", 1000),
		Temperature: getEnvFloatOrDefault("AI_TEMPERATURE", 0.5),
		TimeoutMS:   getEnvIntOrDefault("AI_TIMEOUT_MS", 30000),
		FastPricing: ModelPricing{
			InputPerMillion:  getEnvFloatOrDefault("ANTHROPIC_MODEL_FAST_INPUT_PRICE", 1.00),
			OutputPerMillion: getEnvFloatOrDefault("ANTHROPIC_MODEL_FAST_OUTPUT_PRICE", 5.00),
		},
		DefaultPricing: ModelPricing{
			InputPerMillion:  getEnvFloatOrDefault("ANTHROPIC_MODEL_INPUT_PRICE", 3.00),
			OutputPerMillion: getEnvFloatOrDefault("ANTHROPIC_MODEL_OUTPUT_PRICE", 15.00),
		},
		PromptLogMax:   getEnvIntOrDefault("AI_LOG_PROMPT_MAX", 5000),
		ResponseLogMax: getEnvIntOrDefault("AI_LOG_RESPONSE_MAX", 10000),
		RiskThresholds: map[string]int{
			"silent_divorce_risk":    getEnvIntOrDefault("RISK_THRESHOLD_SILENT_DIVORCE", 70),
			"nervous_system_load":    getEnvIntOrDefault("RISK_THRESHOLD_BURNOUT", 70),
			"betrayal_vulnerability": getEnvIntOrDefault("RISK_THRESHOLD_BETRAYAL", 70),
			"internalized_malice":    getEnvIntOrDefault("RISK_THRESHOLD_MALICE", 70),
		},
	}
}

// IsEnabled returns true if the AI API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// MessagesEndpoint returns the full messages API endpoint.
func (c *AIConfig) MessagesEndpoint() string {
	return c.BaseURL + "/v1/messages"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
