package narrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jejutic/werewolf/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type stubModel struct {
	answer   string
	err      error
	block    bool
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.options)
	}
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.answer}},
	}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

var bob = game.Player{ID: 1, Name: "Bob", Role: game.Seer}

func Test_Narrate(t *testing.T) {
	assert := assert.New(t)
	model := &stubModel{answer: "  The mist took Bob before the bells.\n"}
	s := newStoryteller(model, Config{Temperature: 0.5, Timeout: time.Second})

	story, err := s.Narrate(context.Background(), game.Death{Player: bob, Cause: game.CauseWerewolves, Night: 2})
	require.NoError(t, err)
	assert.Equal("The mist took Bob before the bells.", story)
	assert.Equal(0.5, model.options.Temperature)

	require.Len(t, model.messages, 2)
	assert.Equal(llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(llms.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Equal(
		llms.TextContent{Text: "During night 2 the werewolves killed Bob, who was the Seer.\n\nTell their fate in one or two sentences."},
		model.messages[1].Parts[0],
	)
}

func Test_Narrate_failure(t *testing.T) {
	s := newStoryteller(&stubModel{err: errors.New("connection refused")}, Config{})
	_, err := s.Narrate(context.Background(), game.Death{Player: bob, Cause: game.CauseLynch, Day: 1})
	assert.ErrorContains(t, err, "connection refused")

	s = newStoryteller(&stubModel{block: true}, Config{Timeout: 10 * time.Millisecond})
	_, err = s.Narrate(context.Background(), game.Death{Player: bob, Cause: game.CauseHunter})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func Test_describe(t *testing.T) {
	assert.Contains(t, describe(game.Death{Player: bob, Cause: game.CauseLynch, Day: 3}),
		"On day 3 the village lynched Bob, who was the Seer.")
	assert.Contains(t, describe(game.Death{Player: bob, Cause: game.CauseHunter}),
		"The dying Hunter shot Bob, who was the Seer.")
}

func Test_New(t *testing.T) {
	s, err := New(Config{})
	require.NoError(t, err)
	assert.Nil(t, s, "narrator is disabled without a provider")

	_, err = New(Config{Provider: "oracle"})
	assert.Error(t, err)

	s, err = New(Config{Provider: "ollama", Model: "llama3", URL: "http://localhost:11434", Timeout: time.Second})
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = New(Config{Provider: "openai-compatible", Model: "any", URL: "http://localhost:8080/v1", APIKey: "secret"})
	require.NoError(t, err)
	assert.NotNil(t, s)
}
