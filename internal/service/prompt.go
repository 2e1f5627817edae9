// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"text/template"

	"github.com/MKhiriev/soul-scribe/models"
)

const systemPromptText = `You are SoulScribe, a compassionate and attentive AI mental wellness companion.
When speaking with the user, keep your tone gentle, encouraging, and non-judgmental.
You know these details about them:

Their go-to coping strategy is {{.CopingMechanism}}.

Their recent mood journey (from latest to earliest) is: {{.MoodSummary}}.

Use this information to tailor your responses, validate their feelings, and suggest support in a way that aligns with their preferred coping style and current emotional state.`

// text/template performs no escaping, so user-entered profile values are
// substituted verbatim.
var systemPrompt = template.Must(template.New("system").Option("missingkey=error").Parse(systemPromptText))

// RenderSystemPrompt fills the system prompt with block.
func RenderSystemPrompt(block models.ContextBlock) (string, error) {
	var sb strings.Builder
	if err := systemPrompt.Execute(&sb, block); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// BuildMessages returns the system prompt followed by the raw user message.
func BuildMessages(block models.ContextBlock, userMessage string) ([]models.ChatMessage, error) {
	prompt, err := RenderSystemPrompt(block)
	if err != nil {
		return nil, err
	}

	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: prompt},
		{Role: models.RoleUser, Content: userMessage},
	}, nil
}
