package llmprovider

import (
	"context"

	"deal-finder/pkg/deepseek"
	"deal-finder/pkg/qwen"
)

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		SystemInstruction: convertToDeepSeekContent(req.SystemInstruction),
		Messages:          convertToDeepSeekContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromDeepSeekContent(resp.Content),
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          convertToQwenContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromQwenContent(resp.Content),
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for DeepSeek
func convertToDeepSeekContent(msg *Message) *deepseek.Content {
	if msg == nil {
		return nil
	}
	parts := make([]deepseek.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = deepseek.Part{Text: p.Text}
	}
	return &deepseek.Content{Role: msg.Role, Parts: parts}
}

func convertToDeepSeekContents(msgs []Message) []deepseek.Content {
	contents := make([]deepseek.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToDeepSeekContent(&msg)
	}
	return contents
}

func convertFromDeepSeekContent(content deepseek.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Qwen
func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func convertToQwenContents(msgs []Message) []qwen.Content {
	contents := make([]qwen.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToQwenContent(&msg)
	}
	return contents
}

func convertFromQwenContent(content qwen.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
