package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanaai/job-assistant/internal/llm"
	"github.com/sanaai/job-assistant/internal/schemas"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (c *fakeClient) Complete(_ context.Context, prompt, _ string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *fakeClient) CompleteJSON(ctx context.Context, prompt, system string, tier llm.ModelTier) (string, error) {
	return c.Complete(ctx, prompt, system, tier)
}

func (c *fakeClient) Close() error { return nil }

const posting = "Backend Engineer role. Requires Go, PostgreSQL, and 5 years of experience with microservices."

func TestParseJD_Success(t *testing.T) {
	client := &fakeClient{response: `{
		"skills": ["Go", "PostgreSQL"],
		"requirements": ["5 years of experience"],
		"keywords": ["microservices"],
		"experience_years": 5,
		"education": null,
		"location": null,
		"employment_type": null
	}`}

	parsed, err := ParseJD(context.Background(), client, posting)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, parsed.Skills)
	assert.Equal(t, []string{"5 years of experience"}, parsed.Requirements)
	assert.Equal(t, []string{"microservices"}, parsed.Keywords)
	require.NotNil(t, parsed.ExperienceYears)
	assert.Equal(t, 5, *parsed.ExperienceYears)
	assert.Nil(t, parsed.Education)
	assert.Contains(t, client.prompt, posting)
}

func TestParseJD_FencedResponse(t *testing.T) {
	// Models sometimes wrap the object in prose despite instructions.
	client := &fakeClient{response: `Here is the parsed result: {"skills": ["Go"], "requirements": [], "keywords": []} hope that helps`}

	parsed, err := ParseJD(context.Background(), client, posting)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, parsed.Skills)
}

func TestParseJD_EmptyPosting(t *testing.T) {
	client := &fakeClient{}

	parsed, err := ParseJD(context.Background(), client, "   ")

	require.Error(t, err)
	assert.Nil(t, parsed)
	var parseErr *llm.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseJD_ClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("model unavailable")}

	parsed, err := ParseJD(context.Background(), client, posting)

	require.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseJD_NonJSONResponse(t *testing.T) {
	client := &fakeClient{response: "I cannot parse this job description."}

	parsed, err := ParseJD(context.Background(), client, posting)

	require.Error(t, err)
	assert.Nil(t, parsed)
	var parseErr *llm.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseJD_SchemaViolation(t *testing.T) {
	// Missing the required arrays entirely.
	client := &fakeClient{response: `{"skills": "not an array"}`}

	parsed, err := ParseJD(context.Background(), client, posting)

	require.Error(t, err)
	assert.Nil(t, parsed)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
