package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safewatch-chatbot/pkg"
)

func TestDecodeWireReport(t *testing.T) {
	parsed, err := decodeWire([]byte(`{
		"intent": "report",
		"drug": "Ibuprofen",
		"reaction": "a headache",
		"age": "30",
		"gender": "Male"
	}`))
	require.NoError(t, err)
	assert.Equal(t, pkg.IntentReport, parsed.Intent)
	assert.Equal(t, "Ibuprofen", parsed.Drug)
	assert.Equal(t, "a headache", parsed.Reaction)
	assert.Equal(t, "30", parsed.Age)
	assert.Equal(t, pkg.GenderMale, parsed.Gender)
}

// Models return age as a string or a number; both must decode.
func TestDecodeWireNumericAge(t *testing.T) {
	parsed, err := decodeWire([]byte(`{"intent": "report", "drug": "Aspirin", "reaction": "rash", "age": 25, "gender": "female"}`))
	require.NoError(t, err)
	assert.Equal(t, "25", parsed.Age)
	assert.Equal(t, pkg.GenderFemale, parsed.Gender)
}

func TestDecodeWireNullFields(t *testing.T) {
	parsed, err := decodeWire([]byte(`{"intent": "report", "drug": "Aspirin", "reaction": "rash", "age": null, "gender": null}`))
	require.NoError(t, err)
	assert.Empty(t, parsed.Age)
	assert.Empty(t, parsed.Gender)
}

// Query results must stay structurally compatible with the rule cascade:
// no reaction or slots on a query.
func TestDecodeWireQueryDropsReportFields(t *testing.T) {
	parsed, err := decodeWire([]byte(`{"intent": "query", "drug": "Aspirin", "reaction": "nausea", "age": "40", "gender": "Male"}`))
	require.NoError(t, err)
	assert.Equal(t, pkg.IntentQuery, parsed.Intent)
	assert.Equal(t, "Aspirin", parsed.Drug)
	assert.Empty(t, parsed.Reaction)
	assert.Empty(t, parsed.Age)
	assert.Empty(t, parsed.Gender)
}

func TestDecodeWireUnknownCarriesNothing(t *testing.T) {
	parsed, err := decodeWire([]byte(`{"intent": "unknown", "drug": "Aspirin"}`))
	require.NoError(t, err)
	assert.Equal(t, &pkg.ParsedMessage{Intent: pkg.IntentUnknown}, parsed)
}

func TestDecodeWireUnrecognisedIntent(t *testing.T) {
	parsed, err := decodeWire([]byte(`{"intent": "greeting"}`))
	require.NoError(t, err)
	assert.Equal(t, pkg.IntentUnknown, parsed.Intent)
}

func TestDecodeWireMalformedJSON(t *testing.T) {
	_, err := decodeWire([]byte(`I cannot answer that`))
	assert.Error(t, err)
}

func TestNewOpenAIParserDisabledWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	assert.Nil(t, NewOpenAIParser())
}
