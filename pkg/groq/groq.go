package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newGroqImpl creates a new Groq implementation
func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Groq API
func (g *groqImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openAIReq := g.transformRequest(req)

	body, err := json.Marshal(openAIReq)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp openAIErrorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("groq: failed to decode response: %w", err)
	}

	return g.transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}

// transformRequest converts request to OpenAI-compatible format
func (g *groqImpl) transformRequest(req *Request) *openAIRequest {
	openAIReq := &openAIRequest{
		Model:       g.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0),
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = "system"
		openAIReq.Messages = append(openAIReq.Messages, systemMsg)
	}

	for _, msg := range req.Messages {
		openAIReq.Messages = append(openAIReq.Messages, transformMessage(&msg))
	}

	return openAIReq
}

func transformMessage(msg *Content) openAIMessage {
	openAIMsg := openAIMessage{Role: msg.Role}

	for _, part := range msg.Parts {
		if part.Text == "" {
			continue
		}
		if openAIMsg.Content != "" {
			openAIMsg.Content += "\n"
		}
		openAIMsg.Content += part.Text
	}

	return openAIMsg
}

func (g *groqImpl) transformResponse(resp *openAIResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	return &Response{
		Content: message,
		Usage:   usage,
	}
}
