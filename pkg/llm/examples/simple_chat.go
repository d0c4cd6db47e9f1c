//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"researcher-api/pkg/llm"
)

func main() {
	cfg, err := llm.LoadConfig("../../../etc/llm.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := client.CreateChatCompletion(ctx, llm.CompletionRequest{
		Model:       "gpt-4.1",
		Provider:    "openai",
		Temperature: 0.15,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You are a helpful research assistant."},
			{Role: llm.RoleUser, Content: "task: summarise current guidance on impacted wisdom teeth"},
		},
		OnUsage: func(u llm.Usage) {
			fmt.Printf("tokens: prompt=%d completion=%d\n", u.PromptTokens, u.CompletionTokens)
		},
	})
	if err != nil {
		log.Fatalf("completion failed: %v", err)
	}

	fmt.Println(text)
}
