package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"deli-pos/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// AgentService is the AI collaborator surface the application depends on:
// free-text command parsing and the business-day summary.
type AgentService interface {
	ParseCommand(ctx context.Context, input, menu string) (*core.ParsedCommand, error)
	AnalyzeBusinessDay(ctx context.Context, digest string) (string, error)
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// ParseCommand interprets a spoken or typed instruction from the deli
// counter and returns a tagged command: a sale, an expense, or a fryer run.
func (a *Agent) ParseCommand(ctx context.Context, input, menu string) (*core.ParsedCommand, error) {
	prompt := fmt.Sprintf(`You are the order-taking assistant of a fried-chicken deli in Bolivia.
Interpret the instruction and produce exactly one command.
Rules:
1. SALE: use ONLY product ids (and variant ids) from the menu below.
2. EXPENSE: capture what was bought and the amount in Bs.
3. ADD_STOCK: the number of raw chickens to send to the fryer.
4. Amounts and discounts are decimal strings (e.g. "21.50").
5. Mark paid=true only when the instruction says the customer already paid.

Menu:
%s

Instruction: %s`, menu, input)

	schemaStruct := generateSchema()
	schemaJSON, err := json.Marshal(schemaStruct)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "pos_command",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("A point-of-sale command: sale, expense, or stock production"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("empty response content")
	}

	var cmd core.ParsedCommand
	if err := json.Unmarshal([]byte(content), &cmd); err != nil {
		return nil, fmt.Errorf("failed to parse completion: %w", err)
	}

	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("command validation failed: %w", err)
	}

	return &cmd, nil
}

// AnalyzeBusinessDay turns a digest of today's sales and expenses into a
// short plain-language summary for the owner. Errors are returned verbatim
// for the caller to surface to the user.
func (a *Agent) AnalyzeBusinessDay(ctx context.Context, digest string) (string, error) {
	prompt := fmt.Sprintf(`You are the business advisor of a small fried-chicken deli.
Given today's figures, write a short summary in Spanish: how the day went,
what sold best, anything unusual in the expenses, and one concrete suggestion.
Keep it under 150 words. Plain text, no markdown.

Today's figures:
%s`, digest)

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

func generateSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v core.ParsedCommand
	return reflector.Reflect(v)
}
