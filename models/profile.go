// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CopingMechanismKey is the profile key read by the chat context assembler.
const CopingMechanismKey = "coping_mechanism"

// Profile is an open-ended, flat key-value document describing the user.
//
// Storage keeps it as JSON text; everything above the store works with the
// structured map. Use [ParseProfile] and [Profile.Encode] at the store edge.
type Profile map[string]any

// ParseProfile decodes stored profile text. Empty, malformed or non-object
// text yields an empty Profile.
func ParseProfile(raw string) Profile {
	profile := Profile{}
	if raw == "" {
		return profile
	}

	decoded, err := DecodeProfile([]byte(raw))
	if err != nil || decoded == nil {
		return profile
	}
	return decoded
}

// DecodeProfile decodes a JSON object into a Profile. Numbers are kept as
// [json.Number] so large integers survive a decode and encode round trip.
func DecodeProfile(data []byte) (Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var decoded Profile
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("error decoding profile: %w", err)
	}
	return decoded, nil
}

// Encode serializes the profile into the text form kept in storage.
// A nil profile is encoded as "{}".
func (p Profile) Encode() (string, error) {
	if p == nil {
		return "{}", nil
	}

	data, err := json.Marshal(map[string]any(p))
	if err != nil {
		return "", fmt.Errorf("error encoding profile: %w", err)
	}
	return string(data), nil
}

// Merge returns a new Profile holding every key of p overwritten or extended
// by the keys of partial. Neither input is modified. The merge is shallow:
// nested objects in partial replace the stored value as a whole.
func (p Profile) Merge(partial Profile) Profile {
	merged := make(Profile, len(p)+len(partial))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// CopingMechanism returns the declared coping mechanism, or "" when the key
// is absent or null. Non-string values are formatted with fmt.
func (p Profile) CopingMechanism() string {
	value, ok := p[CopingMechanismKey]
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprint(value)
}

// ProfileUpdate is the body of the profile update endpoint. ProfileData is
// kept raw so that non-object payloads can be rejected explicitly.
type ProfileUpdate struct {
	ProfileData json.RawMessage `json:"profile_data"`
}

// ProfileResponse is returned by the profile read endpoint.
type ProfileResponse struct {
	Username    string  `json:"username"`
	ProfileData Profile `json:"profile_data"`
	DateJoined  string  `json:"date_joined"`
}
