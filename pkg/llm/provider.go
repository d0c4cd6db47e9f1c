package llm

import "strings"

const (
	modelSeparator = "/"
	specSeparator  = ":"
)

// ResolveModelID returns the fully qualified model identifier in provider/model form.
func ResolveModelID(alias string, cfg ModelConfig) string {
	model := strings.TrimSpace(alias)
	if strings.Contains(model, modelSeparator) {
		return model
	}

	name := strings.TrimSpace(cfg.ModelName)
	if name == "" {
		name = model
	}

	provider := strings.TrimSpace(cfg.Provider)
	if provider == "" || strings.Contains(name, modelSeparator) {
		return name
	}
	return provider + modelSeparator + name
}

// ParseModelID splits a fully qualified model string into provider and model name.
func ParseModelID(model string) (provider, name string) {
	parts := strings.SplitN(model, modelSeparator, 2)
	if len(parts) != 2 {
		return "", model
	}
	return parts[0], parts[1]
}

// ParseModelSpec splits a "provider:model" setting such as "openai:gpt-4.1".
// A spec without a provider yields an empty provider and the trimmed model.
func ParseModelSpec(spec string) (provider, model string) {
	spec = strings.TrimSpace(spec)
	parts := strings.SplitN(spec, specSeparator, 2)
	if len(parts) != 2 {
		return "", spec
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
