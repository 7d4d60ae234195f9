package service

import (
	"strings"

	"deepmirror/internal/config"
)

// invocationCost prices a completed call from its usage counters.
// Prices are per million tokens; the model name picks the family.
// Returns nil when usage is unknown so "unknown" and "free" stay
// distinguishable in the log.
func invocationCost(cfg *config.AIConfig, modelName string, inputTokens, outputTokens *int) *float64 {
	if inputTokens == nil || outputTokens == nil {
		return nil
	}

	pricing := cfg.DefaultPricing
	if strings.Contains(modelName, "haiku") {
		pricing = cfg.FastPricing
	}

	cost := float64(*inputTokens)/1_000_000*pricing.InputPerMillion +
		float64(*outputTokens)/1_000_000*pricing.OutputPerMillion
	return &cost
}
