// Package llm provides centralized LLM configuration and client abstractions
// for the interview agent. Model tiers let callers pick latency/quality
// trade-offs without hardcoding model names.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierFast is for latency-sensitive tasks: question generation
	TierFast ModelTier = "fast"
	// TierStandard is for moderate reasoning: transcription, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: batched evaluation synthesis
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the application
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration: flash-tier
// models for latency-sensitive generation, a stronger model for evaluation.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierFast:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, degrading to the next
// cheaper tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierFast]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
