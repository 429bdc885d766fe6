package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskReport     TaskType = "report"
	TaskLessonPlan TaskType = "lesson_plan"
	TaskChat       TaskType = "chat"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generative-language subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The assistant is
// disabled until an API key is supplied.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskReport:     {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 15000},
			TaskLessonPlan: {Temperature: 0.5, MaxTokens: 2048, TimeoutMs: 30000},
			TaskChat:       {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values. Setting ESEKOLAH_AI_API_KEY enables
// the assistant unless ESEKOLAH_AI_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ESEKOLAH_AI_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("ESEKOLAH_AI_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ESEKOLAH_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ESEKOLAH_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ESEKOLAH_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ESEKOLAH_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ESEKOLAH_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskReport, "ESEKOLAH_AI_REPORT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskLessonPlan, "ESEKOLAH_AI_LESSON_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChat, "ESEKOLAH_AI_CHAT_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
