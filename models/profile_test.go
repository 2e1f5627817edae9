package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Profile
	}{
		{name: "empty text", raw: "", want: Profile{}},
		{name: "empty object", raw: "{}", want: Profile{}},
		{name: "object", raw: `{"coping_mechanism":"journaling","age":30}`, want: Profile{"coping_mechanism": "journaling", "age": json.Number("30")}},
		{name: "malformed", raw: `{"coping_mechanism":`, want: Profile{}},
		{name: "array", raw: `["a","b"]`, want: Profile{}},
		{name: "null", raw: `null`, want: Profile{}},
		{name: "string", raw: `"hello"`, want: Profile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProfile(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfile_LargeIntegersSurviveMerge(t *testing.T) {
	stored := ParseProfile(`{"member_id":9007199254740993,"coping_mechanism":"music"}`)

	partial, err := DecodeProfile([]byte(`{"streak":12345678901234567}`))
	require.NoError(t, err)

	encoded, err := stored.Merge(partial).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"member_id":9007199254740993,"coping_mechanism":"music","streak":12345678901234567}`, encoded)
	assert.Contains(t, encoded, "9007199254740993")
	assert.Contains(t, encoded, "12345678901234567")
}

func TestDecodeProfile_RejectsNonObject(t *testing.T) {
	_, err := DecodeProfile([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestProfile_Encode(t *testing.T) {
	encoded, err := Profile{"coping_mechanism": "music"}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"coping_mechanism":"music"}`, encoded)

	encoded, err = Profile(nil).Encode()
	require.NoError(t, err)
	assert.Equal(t, "{}", encoded)
}

func TestProfile_EncodeParseRoundTripKeepsNested(t *testing.T) {
	original := Profile{"prefs": map[string]any{"tone": "gentle"}}

	encoded, err := original.Encode()
	require.NoError(t, err)
	assert.Equal(t, original, ParseProfile(encoded))
}

func TestProfile_Merge(t *testing.T) {
	stored := Profile{"coping_mechanism": "journaling", "age_range": "25-34"}
	partial := Profile{"coping_mechanism": "walking", "goal": "sleep"}

	merged := stored.Merge(partial)

	assert.Equal(t, Profile{
		"coping_mechanism": "walking",
		"age_range":        "25-34",
		"goal":             "sleep",
	}, merged)
	assert.Equal(t, "journaling", stored["coping_mechanism"], "receiver must not be modified")
	assert.Len(t, partial, 2, "partial must not be modified")
}

func TestProfile_MergeIsShallow(t *testing.T) {
	stored := Profile{"prefs": map[string]any{"tone": "gentle", "length": "short"}}
	merged := stored.Merge(Profile{"prefs": map[string]any{"tone": "direct"}})

	assert.Equal(t, map[string]any{"tone": "direct"}, merged["prefs"])
}

func TestProfile_MergeEmpty(t *testing.T) {
	assert.Equal(t, Profile{}, Profile(nil).Merge(nil))
	assert.Equal(t, Profile{"a": "b"}, Profile{"a": "b"}.Merge(Profile{}))
}

func TestProfile_CopingMechanism(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{name: "string", profile: Profile{"coping_mechanism": "deep breathing"}, want: "deep breathing"},
		{name: "absent", profile: Profile{}, want: ""},
		{name: "null", profile: Profile{"coping_mechanism": nil}, want: ""},
		{name: "number", profile: Profile{"coping_mechanism": float64(42)}, want: "42"},
		{name: "bool", profile: Profile{"coping_mechanism": true}, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.CopingMechanism())
		})
	}
}
