package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"safewatch-chatbot/pkg"
)

// extractionPrompt instructs the model to return the same structure the
// rule cascade produces, as strict JSON.
const extractionPrompt = `Analyze the following user text related to drug safety/adverse events.
Extract the following fields in JSON format:
- intent: "query" (asking for info), "report" (reporting a personal experience), or "unknown"
- drug: The name of the drug mentioned (or null)
- reaction: The adverse event/reaction experienced (for reports) or asked about (or null)
- age: Patient age if mentioned (e.g., "25"), else null
- gender: Patient gender if mentioned ("Male" or "Female"), else null

User Text: %q`

// OpenAIParser extracts a ParsedMessage from free text using the OpenAI
// chat completion API in JSON mode. It is an alternative front-end to
// the rule cascade and must produce structurally compatible output.
// API credentials and the model name are loaded from environment
// variables.
type OpenAIParser struct {
	client *openai.Client
	model  string
}

// NewOpenAIParser constructs an OpenAI-backed parser, or nil when no API
// key is configured. A nil parser disables the LLM path entirely and the
// caller uses the rule cascade for every message.
func NewOpenAIParser() *OpenAIParser {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	model := os.Getenv("OPENAI_MODEL_PARSER")
	if model == "" {
		// default to a modern small model; can be overridden via env
		model = "gpt-4o-mini"
	}
	return &OpenAIParser{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// wireMessage is the decode target for the model output. Age is decoded
// leniently because models return it as either a string or a number.
type wireMessage struct {
	Intent   string          `json:"intent"`
	Drug     string          `json:"drug"`
	Reaction string          `json:"reaction"`
	Age      json.RawMessage `json:"age"`
	Gender   string          `json:"gender"`
}

// Parse sends text to the model and decodes the structured result. Any
// API failure, empty completion or malformed JSON is returned as an
// error; callers treat that as "parser unavailable for this message" and
// fall back to the rule cascade.
func (p *OpenAIParser) Parse(ctx context.Context, text string) (*pkg.ParsedMessage, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(extractionPrompt, text)},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}
	return decodeWire([]byte(resp.Choices[0].Message.Content))
}

// decodeWire converts raw model JSON into a ParsedMessage, normalising
// the loosely-typed fields.
func decodeWire(raw []byte) (*pkg.ParsedMessage, error) {
	var wire wireMessage
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decoding parser output: %w", err)
	}

	parsed := &pkg.ParsedMessage{
		Drug:     strings.TrimSpace(wire.Drug),
		Reaction: strings.TrimSpace(wire.Reaction),
		Age:      decodeAge(wire.Age),
	}
	switch strings.ToLower(strings.TrimSpace(wire.Intent)) {
	case "query":
		parsed.Intent = pkg.IntentQuery
	case "report":
		parsed.Intent = pkg.IntentReport
	default:
		parsed.Intent = pkg.IntentUnknown
	}
	switch strings.ToLower(strings.TrimSpace(wire.Gender)) {
	case "male":
		parsed.Gender = pkg.GenderMale
	case "female":
		parsed.Gender = pkg.GenderFemale
	}
	// Unknown intent carries no fields.
	if parsed.Intent == pkg.IntentUnknown {
		return &pkg.ParsedMessage{Intent: pkg.IntentUnknown}, nil
	}
	if parsed.Intent == pkg.IntentQuery {
		parsed.Reaction = ""
		parsed.Age = ""
		parsed.Gender = ""
	}
	return parsed, nil
}

// decodeAge accepts "25", 25 or null and returns the digits as a string.
func decodeAge(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString)
	}
	var asNumber int
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return fmt.Sprint(asNumber)
	}
	return ""
}
