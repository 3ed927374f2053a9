// Package gemini sends course-generation requests to the Gemini API.
package gemini

import (
	"TubeCourse/internal/clients/upstream"
	"TubeCourse/internal/service/generation"
	"TubeCourse/pkg/logger"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-pro-latest"

var errEmptyResponse = errors.New("empty response from model")

type Client struct {
	log    logger.Log
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string, log logger.Log, opts ...option.ClientOption) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{log: log, client: client, model: model}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Generate sends one request and returns the concatenated text parts of the
// response.
func (c *Client) Generate(ctx context.Context, p generation.Payload) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = p.Config.ResponseMIMEType
	m.ResponseSchema = toSchema(p.Config.ResponseSchema)

	resp, err := m.GenerateContent(ctx, genai.Text(p.Prompt))
	if err != nil {
		return "", upstream.Wrap("AI", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			c.log.Warn("gemini: candidate did not finish normally", "candidate", i, "finish_reason", cand.FinishReason.String())
		}
	}

	text := responseText(resp)
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
		// only the first candidate with content is used
		if text.Len() > 0 {
			break
		}
	}
	return text.String()
}

var schemaTypes = map[string]genai.Type{
	generation.TypeObject:  genai.TypeObject,
	generation.TypeArray:   genai.TypeArray,
	generation.TypeString:  genai.TypeString,
	generation.TypeInteger: genai.TypeInteger,
}

// toSchema converts the request schema. Item-count bounds have no field in
// genai.Schema; the prompt states them instead.
func toSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	return out
}
