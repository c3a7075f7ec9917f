package main

import (
	"testing"

	"github.com/cognicore/syllog/pkg/syllog/config"
)

func TestNewClientCarriesAllConfigFields(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLM{
			Endpoint:        "https://api.test/v1/chat/completions",
			APIKey:          "secret",
			Model:           "gpt-test",
			TranslatePrompt: "Emit only facts.",
			RefinePrompt:    "Fix it, emitting plain logic only.",
		},
	}

	client := newClient(cfg)
	if client.BaseURL != cfg.LLM.Endpoint {
		t.Errorf("BaseURL = %q", client.BaseURL)
	}
	if client.APIKey != "secret" || client.Model != "gpt-test" {
		t.Errorf("credentials lost: %+v", client)
	}
	if client.TranslatePrompt != "Emit only facts." {
		t.Errorf("TranslatePrompt = %q", client.TranslatePrompt)
	}
	if client.RefineInstruction != "Fix it, emitting plain logic only." {
		t.Errorf("RefineInstruction = %q", client.RefineInstruction)
	}
}
