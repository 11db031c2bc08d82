package provider

// Registry holds the ordered provider chains constructed at startup and
// passed explicitly into the components that need them. There is no
// package-level provider state anywhere in the module.
type Registry struct {
	// Generation providers serve question and evaluation requests, tried
	// in order.
	Generation []Client
	// Transcription providers serve speech-to-text requests, tried in order.
	Transcription []Client
}

// NewRegistry builds a registry from the given chains. Nil or empty chains
// are legal: the fallback executor then goes straight to its deterministic
// default, which is the configured-with-no-providers degraded mode rather
// than an error.
func NewRegistry(generation, transcription []Client) *Registry {
	return &Registry{
		Generation:    generation,
		Transcription: transcription,
	}
}
