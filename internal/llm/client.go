package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTranslatePrompt = "Translate the following facts written in natural language into Prolog-style logic." +
	" Also, define rules if needed." +
	" Ensure that each predicate and rule is properly closed with parentheses and a period at the end." +
	" Do not use Markdown formatting or code blocks."

const defaultRefineInstruction = "Please fix the logic without using Markdown code blocks."

// Client calls an OpenAI-compatible chat completion endpoint to
// translate natural language into logic text and to repair logic that
// failed validation. Credentials are explicit fields; nothing here
// reads the environment.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string

	// Optional prompt overrides. TranslatePrompt replaces the system
	// prompt of Translate; RefineInstruction replaces the trailing
	// instruction of Refine's system prompt.
	TranslatePrompt   string
	RefineInstruction string

	HTTPClient *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Translate turns a natural-language knowledge base into logic text.
// The result carries no schema guarantee; callers validate and parse it.
func (c *Client) Translate(ctx context.Context, nlText string) (string, error) {
	system := c.TranslatePrompt
	if system == "" {
		system = defaultTranslatePrompt
	}
	return c.chat(ctx, system, nlText)
}

// Refine resends broken logic text together with the validator's issue
// descriptions and returns the corrected text. It is called at most
// once per ingestion.
func (c *Client) Refine(ctx context.Context, brokenLogic string, issues []string) (string, error) {
	instruction := c.RefineInstruction
	if instruction == "" {
		instruction = defaultRefineInstruction
	}
	system := fmt.Sprintf("The following logic has errors:\n%s\n%s", strings.Join(issues, "\n"), instruction)
	return c.chat(ctx, system, brokenLogic)
}

func (c *Client) chat(ctx context.Context, system, user string) (string, error) {
	if c.BaseURL == "" || c.Model == "" {
		return "", fmt.Errorf("llm: base URL and model required")
	}
	messages := []chatMessage{{Role: "system", Content: system}, {Role: "user", Content: user}}
	payload, err := c.send(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("llm: empty response")
	}
	return payload.Choices[0].Message.Content, nil
}

func (c *Client) send(ctx context.Context, messages []chatMessage) (*chatResponse, error) {
	reqBody, err := json.Marshal(chatRequest{Model: c.Model, Messages: messages})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("llm error: %s", payload.Error.Message)
	}
	return &payload, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
