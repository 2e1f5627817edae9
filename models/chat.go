// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Chat message roles understood by the chat-completions API.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one turn sent to the upstream chat-completions API.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ContextBlock is the per-request summary of the user's coping preference
// and recent mood trend injected into the system prompt. It is rebuilt on
// every chat request and never stored.
type ContextBlock struct {
	CopingMechanism string
	MoodSummary     string
}

// ChatRequest is the body of the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned by the chat endpoint on success.
type ChatResponse struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
}
