package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/marchampson/mcp-openai-server/internal/openai"
)

// Chat completion request defaults applied when arguments omit them
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 150
)

// HandleListModels fetches the upstream model list and formats it as one
// line per model with the creation time rendered as RFC 3339
func HandleListModels(ctx context.Context, tc *ToolContext, raw json.RawMessage) (*CallResult, error) {
	list, err := tc.Client.ListModels(ctx)
	if err != nil {
		return ErrorResult("Error listing models: " + err.Error()), nil
	}

	lines := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		created := time.Unix(m.Created, 0).UTC().Format(time.RFC3339)
		lines = append(lines, fmt.Sprintf("- %s (created: %s)", m.ID, created))
	}

	return TextResult(strings.Join(lines, "\n"), map[string]any{
		"count": len(list.Data),
	}), nil
}

// HandleChatCompletion issues a single non-streamed completion and projects
// the first choice's message content into the envelope
func HandleChatCompletion(ctx context.Context, tc *ToolContext, raw json.RawMessage) (*CallResult, error) {
	var params ChatCompletionParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return ErrorResult("Error: invalid arguments: " + err.Error()), nil
		}
	}
	if err := params.Validate(); err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	req := openai.ChatCompletionRequest{
		Model:       tc.DefaultChatModel,
		Messages:    params.Messages,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		Stream:      false,
	}
	if params.Model != nil {
		req.Model = *params.Model
	}
	if params.Temperature != nil {
		req.Temperature = *params.Temperature
	}
	if params.MaxTokens != nil {
		req.MaxTokens = *params.MaxTokens
	}

	resp, err := tc.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	content, err := projectChatContent(resp)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	metadata := map[string]any{
		"model":         resp.Model,
		"finish_reason": resp.Choices[0].FinishReason,
	}
	if len(resp.Usage) > 0 {
		metadata["usage"] = resp.Usage
	}

	return TextResult(content, metadata), nil
}

// projectChatContent extracts choices[0].message.content, reporting absent
// fields as a malformed response instead of indexing blindly
func projectChatContent(resp *openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", &openai.MalformedResponseError{Field: "choices[0]"}
	}
	msg := resp.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return "", &openai.MalformedResponseError{Field: "choices[0].message.content"}
	}
	return *msg.Content, nil
}

// HandleCreateEmbedding generates an embedding and reports only its dimension
// count; the raw vector is never surfaced to the caller
func HandleCreateEmbedding(ctx context.Context, tc *ToolContext, raw json.RawMessage) (*CallResult, error) {
	var params EmbeddingParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return ErrorResult("Error: invalid arguments: " + err.Error()), nil
		}
	}
	if err := params.Validate(); err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	input, err := params.ParseInput()
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	req := openai.EmbeddingRequest{
		Model: tc.DefaultEmbeddingModel,
		Input: input,
	}
	if params.Model != nil {
		req.Model = *params.Model
	}

	resp, err := tc.Client.CreateEmbedding(ctx, req)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	if len(resp.Data) == 0 {
		malformed := &openai.MalformedResponseError{Field: "data[0].embedding"}
		return ErrorResult("Error: " + malformed.Error()), nil
	}
	dimensions := len(resp.Data[0].Embedding)

	metadata := map[string]any{
		"model": resp.Model,
	}
	if len(resp.Usage) > 0 {
		metadata["usage"] = resp.Usage
	}

	return TextResult(fmt.Sprintf("Generated embedding with %d dimensions", dimensions), metadata), nil
}
