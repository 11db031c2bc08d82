package types

// RawProviderOutput is the loosely-typed payload returned by a provider
// before parsing and validation. Exactly one of Text or Structured is set;
// an explicit parse step turns it into a strongly-typed domain value before
// anything reaches the session state machine.
type RawProviderOutput struct {
	Text       string
	Structured map[string]any
}

// TextOutput wraps free text from a provider.
func TextOutput(text string) RawProviderOutput {
	return RawProviderOutput{Text: text}
}

// StructuredOutput wraps an already-decoded mapping from a provider.
func StructuredOutput(m map[string]any) RawProviderOutput {
	return RawProviderOutput{Structured: m}
}

// IsStructured reports whether the payload carries a decoded mapping.
func (o RawProviderOutput) IsStructured() bool {
	return o.Structured != nil
}

// Empty reports whether the provider returned nothing usable.
func (o RawProviderOutput) Empty() bool {
	return o.Text == "" && o.Structured == nil
}
