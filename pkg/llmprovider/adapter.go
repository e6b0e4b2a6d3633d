package llmprovider

import (
	"context"

	"deal-finder/pkg/gemini"
	"deal-finder/pkg/groq"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		SystemInstruction: convertToGroqContent(req.SystemInstruction),
		Messages:          convertToGroqContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGroqContent(resp.Content),
		ProviderName: "groq",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Groq
func convertToGroqContent(msg *Message) *groq.Content {
	if msg == nil {
		return nil
	}
	parts := make([]groq.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = groq.Part{Text: p.Text}
	}
	return &groq.Content{Role: msg.Role, Parts: parts}
}

func convertToGroqContents(msgs []Message) []groq.Content {
	contents := make([]groq.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGroqContent(&msg)
	}
	return contents
}

func convertFromGroqContent(content groq.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
