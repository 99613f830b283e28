// Package llm generates article analysis via an OpenAI-compatible chat API.
// The provider (OpenAI or DeepSeek) is selected once at configuration time
// and fixed for the whole run.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdigest/pkg/config"
)

// deepseek provider defaults
const (
	deepseekEndpoint = "https://api.deepseek.com"
	deepseekModel    = "deepseek-chat"
	openaiModel      = "gpt-4o-mini"
)

// Analyst produces structured analysis documents for article text.
type Analyst struct {
	client *openai.Client
	model  string
	config config.LLMConfig
}

// NewAnalyst creates an analyst for the configured provider.
func NewAnalyst(cfg config.LLMConfig) (*Analyst, error) {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	model := cfg.Model

	switch cfg.Provider {
	case "openai":
		if model == "" {
			model = openaiModel
		}
	case "deepseek":
		clientConfig.BaseURL = deepseekEndpoint
		if model == "" {
			model = deepseekModel
		}
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}

	// explicit endpoint wins over the provider default
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Analyst{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		config: cfg,
	}, nil
}

const analystRole = "You are an expert analyst specializing in blockchain, cryptocurrency, and AI technologies. " +
	"You explain complex technical concepts with exceptional clarity and connect them to market implications."

const summaryPrompt = `Analyze the article below and produce a detailed summary in markdown.
Use exactly these section headers, in this order:

## Background
## Overview
## Mechanism
## Market Impact
## Outlook

Each section should be 2-4 paragraphs or a tight bullet list. Write about the
content directly, never open with phrases like "The article discusses".

Article:
%s`

const outlinePrompt = `Produce a report outline for the article below, in markdown.
Use exactly these section headers, in this order:

## Background
## Problems
## Solutions
## Conclusion

Keep each section to 3-6 bullet points suitable as a skeleton for a longer report.

Article:
%s`

const insightsPrompt = `Read the article below and produce analytical takeaways in markdown.
Use exactly these section headers, in this order:

## Insights
## Open Questions

Insights: 3-5 bullets with the non-obvious implications for investors, builders, or researchers.
Open Questions: 3-5 bullets with the unresolved questions the article raises.

Article:
%s`

// Summarize generates the detailed summary document
// (Background, Overview, Mechanism, Market Impact, Outlook).
func (a *Analyst) Summarize(ctx context.Context, text string) (string, error) {
	return a.complete(ctx, fmt.Sprintf(summaryPrompt, text))
}

// Outline generates the report outline document
// (Background, Problems, Solutions, Conclusion).
func (a *Analyst) Outline(ctx context.Context, text string) (string, error) {
	return a.complete(ctx, fmt.Sprintf(outlinePrompt, text))
}

// Insights generates the insights and open questions document.
func (a *Analyst) Insights(ctx context.Context, text string) (string, error) {
	return a.complete(ctx, fmt.Sprintf(insightsPrompt, text))
}

// complete runs a single blocking chat completion and returns its content.
func (a *Analyst) complete(ctx context.Context, prompt string) (string, error) {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analystRole},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from llm")
	}
	return content, nil
}
