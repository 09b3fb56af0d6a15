package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Series     string `yaml:"series"`
	BaseURL    string `yaml:"base_url"`
	FirstIssue int    `yaml:"first_issue"`
	LastIssue  int    `yaml:"last_issue"`
	DelayMs    int    `yaml:"delay_ms"`

	Output      string `yaml:"output"`
	ChartOutput string `yaml:"chart_output"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`
	BypassCF   bool   `yaml:"bypass_cloudflare"`

	Debug bool `yaml:"debug"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool

	Series     string
	BaseURL    string
	FirstIssue int
	LastIssue  int
	DelayMs    int

	Output      string
	ChartOutput string

	Cookie     string
	CookieFile string
	UserAgent  string
	BypassCF   bool
}

func DefaultConfig() *Config {
	return &Config{
		Series:      "Amazing Spider-Man",
		BaseURL:     "https://marvel.fandom.com/wiki/",
		FirstIssue:  1,
		LastIssue:   50,
		DelayMs:     500,
		Output:      "villains.json",
		ChartOutput: "villains-chart.json",
		Cookie:      "",
		CookieFile:  "",
		UserAgent:   "",
		BypassCF:    false,
		Debug:       false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `villainviz config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Series != "" {
		c.Series = o.Series
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.FirstIssue != 0 {
		c.FirstIssue = o.FirstIssue
	}
	if o.LastIssue != 0 {
		c.LastIssue = o.LastIssue
	}
	if o.DelayMs != 0 {
		c.DelayMs = o.DelayMs
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.ChartOutput != "" {
		c.ChartOutput = o.ChartOutput
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.BypassCF {
		c.BypassCF = true
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	if c.Series == "" {
		c.Series = "Amazing Spider-Man"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://marvel.fandom.com/wiki/"
	}
	if c.FirstIssue == 0 {
		c.FirstIssue = 1
	}
	if c.LastIssue == 0 {
		c.LastIssue = c.FirstIssue
	}
	if c.DelayMs == 0 {
		c.DelayMs = 500
	}
	if c.Output == "" {
		c.Output = "villains.json"
	}
	if c.ChartOutput == "" {
		c.ChartOutput = "villains-chart.json"
	}
}

func (c *Config) Print() {
	fmt.Printf(" -series: %s\n", c.Series)
	fmt.Printf(" -base_url: %s\n", c.BaseURL)
	fmt.Printf(" -issues: %d-%d\n", c.FirstIssue, c.LastIssue)
	fmt.Printf(" -delay_ms: %d\n", c.DelayMs)
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -chart_output: %s\n", c.ChartOutput)
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.BypassCF {
		fmt.Printf(" -bypass_cloudflare: %t\n", c.BypassCF)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
