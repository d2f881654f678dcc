package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	env := Success(map[string]string{"filePath": "/tmp/Foo.java"})
	b, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, true, decoded["succeed"])
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "errorReason")
}

func TestFailureEnvelopeShape(t *testing.T) {
	env := Failure("file already exists: /tmp/Foo.java")
	b, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, false, decoded["succeed"])
	assert.Contains(t, decoded, "errorReason")
	assert.NotContains(t, decoded, "data")
}

func TestEnvelopeExclusivity(t *testing.T) {
	cases := []*Envelope{
		SuccessEmpty(),
		Success("x"),
		Failure("boom"),
	}
	for _, env := range cases {
		hasData := env.Data != nil
		hasErr := env.ErrorReason != ""
		assert.False(t, hasData && hasErr, "data and errorReason must not both be present")
		assert.Equal(t, env.Succeed, !hasErr)
	}
}

func TestMissingExternalSymbolCarriesPayload(t *testing.T) {
	env := FromError(MissingExternalSymbol("Auditable"))
	assert.False(t, env.Succeed)
	assert.NotEmpty(t, env.ErrorReason)
	assert.Contains(t, env.ErrorReason, "Auditable")
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["requiresSymbolSource"])
	assert.Equal(t, "Auditable", data["symbol"])
}

func TestAsCLIErrorWrapsUnknown(t *testing.T) {
	ce := AsCLIError(assertError{"boom"})
	require.NotNil(t, ce)
	assert.Equal(t, KindIOFailure, ce.Kind)
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
