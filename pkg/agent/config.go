package agent

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"researcher-api/pkg/confkit"
	"researcher-api/pkg/journal"
	"researcher-api/pkg/llm"
	"researcher-api/pkg/prompt"
)

const (
	defaultSmartLLM     = "openai:gpt-4.1"
	defaultTemperature  = 0.15
	defaultMaxSubtopics = 3

	envSmartLLM     = "SMART_LLM"
	envPromptFamily = "PROMPT_FAMILY"
)

// Config controls how agents are chosen.
type Config struct {
	// SmartLLM is the "provider:model" used for selection.
	SmartLLM       string         `yaml:"smart_llm"`
	Temperature    float64        `yaml:"temperature"`
	LLMKwargs      map[string]any `yaml:"llm_kwargs"`
	PromptFamily   string         `yaml:"prompt_family"`
	PromptTemplate string         `yaml:"prompt_template"`
	MaxSubtopics   int            `yaml:"max_subtopics"`
	JournalDir     string         `yaml:"journal_dir"`
	JournalFormat  string         `yaml:"journal_format"`

	Provider string `yaml:"-"`
	Model    string `yaml:"-"`

	temperatureSet bool
}

// DefaultConfig returns the settings used when no file is supplied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Provider, cfg.Model = llm.ParseModelSpec(cfg.SmartLLM)
	return cfg
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open agent config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// MustLoad reads etc/agent.yaml from the project root and panics on error.
func MustLoad() *Config {
	path := confkit.MustProjectPath("etc/agent.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read agent config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal agent config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err == nil {
		_, cfg.temperatureSet = raw["temperature"]
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	cfg.Provider, cfg.Model = llm.ParseModelSpec(cfg.SmartLLM)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.SmartLLM) == "" {
		c.SmartLLM = defaultSmartLLM
	}
	if !c.temperatureSet && c.Temperature == 0 {
		c.Temperature = defaultTemperature
	}
	if strings.TrimSpace(c.PromptFamily) == "" {
		c.PromptFamily = prompt.DefaultFamilyName
	}
	if c.MaxSubtopics <= 0 {
		c.MaxSubtopics = defaultMaxSubtopics
	}
	if strings.TrimSpace(c.JournalFormat) == "" {
		c.JournalFormat = journal.FormatJSON
	}
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(envSmartLLM)); v != "" {
		c.SmartLLM = v
	}
	if v := strings.TrimSpace(os.Getenv(envPromptFamily)); v != "" {
		c.PromptFamily = v
	}
	c.PromptTemplate = strings.TrimSpace(os.ExpandEnv(c.PromptTemplate))
	c.JournalDir = strings.TrimSpace(os.ExpandEnv(c.JournalDir))
}

// Validate ensures configuration sanity.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return errors.New("agent config: smart_llm must name a model")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("agent config: temperature must be between 0 and 2, got %v", c.Temperature)
	}
	for key := range c.LLMKwargs {
		if strings.TrimSpace(key) == "" {
			return errors.New("agent config: llm_kwargs cannot contain empty keys")
		}
	}
	if c.MaxSubtopics <= 0 {
		return errors.New("agent config: max_subtopics must be positive")
	}
	if !journal.ValidFormat(c.JournalFormat) {
		return fmt.Errorf("agent config: unsupported journal_format %q", c.JournalFormat)
	}
	return nil
}

// Family builds the prompt family this config names.
func (c *Config) Family() (*prompt.TemplateFamily, error) {
	return prompt.NewFamily(c.PromptFamily, c.PromptTemplate)
}
