package narrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jejutic/werewolf/pkg/game"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You are the narrator of a werewolf party game played by friends around one table. When a player dies, you tell one or two short atmospheric sentences about their fate. Be gothic, never mention anything you weren't told and never address the players.`

// Config selects the model, an empty Provider disables the narrator
type Config struct {
	Provider    string        `env:"PROVIDER"` // ollama, openai, openai-compatible or claude
	Model       string        `env:"MODEL"`
	URL         string        `env:"URL" envDefault:"http://localhost:11434"`
	APIKey      string        `env:"API_KEY"`
	Temperature float64       `env:"TEMPERATURE" envDefault:"0.8"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"20s"`
}

// Storyteller tells stories about deaths with a language model
type Storyteller struct {
	llm      llms.Model
	callOpts []llms.CallOption
	timeout  time.Duration
}

// New returns nil without error when no provider is configured
func New(cfg Config) (*Storyteller, error) {
	var (
		llm llms.Model
		err error
	)

	switch cfg.Provider {
	case "":
		return nil, nil
	case "ollama":
		llm, err = ollama.New(ollama.WithModel(cfg.Model), ollama.WithServerURL(cfg.URL))
	case "openai", "openai-compatible":
		opts := []openai.Option{openai.WithModel(cfg.Model)}
		if cfg.Provider == "openai-compatible" {
			opts = append(opts, openai.WithBaseURL(cfg.URL))
		}
		if cfg.APIKey != "" {
			opts = append(opts, openai.WithToken(cfg.APIKey))
		}
		llm, err = openai.New(opts...)
	case "claude":
		opts := []anthropic.Option{anthropic.WithModel(cfg.Model)}
		if cfg.APIKey != "" {
			opts = append(opts, anthropic.WithToken(cfg.APIKey))
		}
		llm, err = anthropic.New(opts...)
	default:
		return nil, fmt.Errorf("unknown narrator provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s narrator: %w", cfg.Provider, err)
	}

	return newStoryteller(llm, cfg), nil
}

func newStoryteller(llm llms.Model, cfg Config) *Storyteller {
	return &Storyteller{
		llm:      llm,
		callOpts: []llms.CallOption{llms.WithTemperature(cfg.Temperature)},
		timeout:  cfg.Timeout,
	}
}

// Narrate implements game.Narrator
func (s *Storyteller) Narrate(ctx context.Context, d game.Death) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, describe(d)),
	}
	resp, err := s.llm.GenerateContent(ctx, messages, s.callOpts...)
	if err != nil {
		return "", fmt.Errorf("generate story: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generate story: no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func describe(d game.Death) string {
	var what string
	switch d.Cause {
	case game.CauseWerewolves:
		what = fmt.Sprintf("During night %d the werewolves killed %s, who was the %s.", d.Night, d.Player.Name, d.Player.Role)
	case game.CauseLynch:
		what = fmt.Sprintf("On day %d the village lynched %s, who was the %s.", d.Day, d.Player.Name, d.Player.Role)
	case game.CauseHunter:
		what = fmt.Sprintf("The dying Hunter shot %s, who was the %s.", d.Player.Name, d.Player.Role)
	default:
		what = fmt.Sprintf("%s, the %s, has died.", d.Player.Name, d.Player.Role)
	}
	return what + "\n\nTell their fate in one or two sentences."
}
