package qwen

import "time"

const (
	// DefaultBaseURL is the DashScope OpenAI-compatible endpoint
	DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

	// DefaultModel is the default model to use
	DefaultModel = "qwen-plus"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
