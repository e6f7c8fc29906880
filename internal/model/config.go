package model

import "time"

// Config holds the complete veridia configuration.
type Config struct {
	Annotator   AnnotatorConfig   `yaml:"annotator" mapstructure:"annotator"`
	Embedder    EmbedderConfig    `yaml:"embedder" mapstructure:"embedder"`
	Search      SearchConfig      `yaml:"search" mapstructure:"search"`
	Scoring     ScoringConfig     `yaml:"scoring" mapstructure:"scoring"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AnnotatorConfig points at the sentence/token/entity annotator service.
type AnnotatorConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// EmbedderConfig selects and configures the sentence embedding backend.
type EmbedderConfig struct {
	Provider string        `yaml:"provider" mapstructure:"provider"` // "openai"
	Model    string        `yaml:"model" mapstructure:"model"`
	APIKey   string        `yaml:"-" mapstructure:"api_key"` // never serialized
	BaseURL  string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// SearchConfig configures the web evidence provider.
type SearchConfig struct {
	APIKey      string        `yaml:"-" mapstructure:"api_key"` // never serialized
	BaseURL     string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Language    string        `yaml:"language" mapstructure:"language"` // hl parameter
	Country     string        `yaml:"country" mapstructure:"country"`   // gl parameter
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RatePerSec  float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	MaxSnippets int           `yaml:"max_snippets" mapstructure:"max_snippets"`
	SiteRules   []SiteRule    `yaml:"site_rules" mapstructure:"site_rules"`
}

// SiteRule narrows a search to an allow-list of sites when the most
// relevant entity's lowercase form contains the trigger substring.
type SiteRule struct {
	Trigger string   `yaml:"trigger" mapstructure:"trigger"`
	Sites   []string `yaml:"sites" mapstructure:"sites"`
}

// ScoringConfig holds the evidence classification knobs. All lists are
// plain data so deployments can swap them without code changes.
type ScoringConfig struct {
	SimilarityThreshold    float64  `yaml:"similarity_threshold" mapstructure:"similarity_threshold"`
	ContradictionThreshold float64  `yaml:"contradiction_threshold" mapstructure:"contradiction_threshold"`
	ReliableDomains        []string `yaml:"reliable_domains" mapstructure:"reliable_domains"`
	TrustHints             []string `yaml:"trust_hints" mapstructure:"trust_hints"`
	NegationCues           []string `yaml:"negation_cues" mapstructure:"negation_cues"`
}

// CacheConfig configures search-result and embedding caching.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir,omitempty" mapstructure:"dir"` // empty: memory only
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig bounds parallelism. Workers applies across documents
// in batch mode only; a single document is always verified sequentially.
type ConcurrencyConfig struct {
	Workers      int `yaml:"workers" mapstructure:"workers"`
	CheckWorkers int `yaml:"check_workers" mapstructure:"check_workers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults, including the curated
// reliable-domain list, the negation cue list and the example site rule.
func DefaultConfig() *Config {
	return &Config{
		Annotator: AnnotatorConfig{
			BaseURL: "http://localhost:8090",
			Timeout: 15 * time.Second,
		},
		Embedder: EmbedderConfig{
			Provider: "openai",
			Model:    "text-embedding-3-small",
			Timeout:  30 * time.Second,
		},
		Search: SearchConfig{
			BaseURL:     "https://serpapi.com/search.json",
			Language:    "en",
			Country:     "us",
			Timeout:     20 * time.Second,
			RatePerSec:  2,
			MaxSnippets: 5,
			SiteRules: []SiteRule{
				{
					Trigger: "ambani",
					Sites:   []string{"relianceindustries.com", "timesofindia.indiatimes.com", "ndtv.com"},
				},
				{
					Trigger: "reliance",
					Sites:   []string{"relianceindustries.com", "timesofindia.indiatimes.com", "ndtv.com"},
				},
			},
		},
		Scoring: ScoringConfig{
			SimilarityThreshold:    0.5,
			ContradictionThreshold: 0.4,
			ReliableDomains:        defaultReliableDomains(),
			TrustHints:             []string{"news", "report", "press"},
			NegationCues: []string{
				"not", "false", "incorrect", "no evidence",
				"denied", "refuted", "rumor", "hoax",
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     6 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:      4,
			CheckWorkers: 10,
		},
		Output: OutputConfig{},
	}
}

// defaultReliableDomains is the curated trust list: wire services, major
// national and Indian outlets, government domains and encyclopedic sources.
// Matching is by substring containment on the lowercased host, so entries
// like ".gov" also cover subdomains.
func defaultReliableDomains() []string {
	return []string{
		"wikipedia.org", ".gov", "pmindia.gov.in", "nytimes.com", "bbc.com",
		"reuters.com", "cnn.com", "apnews.com", "washingtonpost.com",
		"theguardian.com", "wsj.com", "bloomberg.com", "britannica.com",
		"wildlifesos.org", "nationalgeographic.com", "scientificamerican.com",
		"techcrunch.com", "theverge.com", "arstechnica.com",
		"timesofindia.indiatimes.com", "ndtv.com", "zeenews.india.com",
		"hindustantimes.com", "thehindu.com", "indianexpress.com",
		"businesstoday.in", "livemint.com", "moneycontrol.com",
		"indiatoday.in", "republicworld.com", "wionews.com",
		"nic.in", "gov.in",
		"pti.in", "ani.in",
	}
}
