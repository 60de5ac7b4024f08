// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the run configuration: who takes part, where pages
// go, and what the pages say about the event.
package config

import (
	"fmt"
	"strings"

	"github.com/toeirei/secretsanta/internal/core/match"
	"github.com/toeirei/secretsanta/internal/core/token"
	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/model"
)

// Config is the resolved configuration of one run.
type Config struct {
	Participants []string    `mapstructure:"participants" yaml:"participants"`
	Language     string      `mapstructure:"language" yaml:"language"`
	Output       Output      `mapstructure:"output" yaml:"output"`
	Token        Token       `mapstructure:"token" yaml:"token"`
	Match        Match       `mapstructure:"match" yaml:"match"`
	Event        model.Event `mapstructure:"event" yaml:"event"`
	Mapping      Mapping     `mapstructure:"mapping" yaml:"mapping"`
	Report       Report      `mapstructure:"report" yaml:"report"`
}

type Output struct {
	Dir         string `mapstructure:"dir" yaml:"dir"`
	BaseURL     string `mapstructure:"base_url" yaml:"base_url"`
	Precompress bool   `mapstructure:"precompress" yaml:"precompress"`
}

type Token struct {
	Length int `mapstructure:"length" yaml:"length"`
}

type Match struct {
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`
	// Seed makes a run reproducible. Zero draws from crypto/rand.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// Mapping controls the opt-in giver/receiver export. An empty Path keeps
// the export disabled.
type Mapping struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Force bool   `mapstructure:"force" yaml:"force"`
}

type Report struct {
	Copy bool `mapstructure:"copy" yaml:"copy"`
}

// Token length bounds. Shorter tokens make pages guessable.
const (
	MinTokenLength = 4
	MaxTokenLength = 64
)

// DefaultParticipants is used when no participant list is configured.
var DefaultParticipants = []string{
	"Annie", "Jacques", "Vincent", "Nathalie", "Grégoire", "Aroldo",
	"Laurence", "Patrick", "Arthur", "Mathilde", "Quentin", "Clémence",
	"Axel", "Julien", "Aurélie", "Oscar", "Jeanne", "Léon",
}

// Defaults returns the viper defaults keyed by config path.
func Defaults() map[string]any {
	return map[string]any{
		"participants":       append([]string(nil), DefaultParticipants...),
		"language":           i18n.DefaultLang,
		"output.dir":         ".",
		"output.base_url":    "",
		"output.precompress": false,
		"token.length":       token.DefaultLength,
		"match.max_attempts": match.DefaultMaxAttempts,
		"match.seed":         0,
		"event.group":        "La Famillia",
		"event.title":        "Secret Santa",
		"event.year":         2025,
		"event.date":         "25 décembre 2025 (soir)",
		"event.location":     "Les Quinaux",
		"event.budget":       "50€",
		"event.rules": []string{
			"Cadeau à moins de 50€",
			"Le jour même : pense à bien avoir écrit le nom sur le papier cadeau",
			"Si tu as une idée de cadeau, n'hésite pas à en faire part à tes proches qui pourraient être contactés pour savoir ce qui te ferait plaisir",
		},
		"event.contact":       "Julien",
		"event.contact_email": "",
		"mapping.path":        "",
		"mapping.force":       false,
		"report.copy":         false,
	}
}

// ParticipantList trims names and converts them to model participants.
// Validation of the list itself is left to the matcher.
func (c Config) ParticipantList() []model.Participant {
	out := make([]model.Participant, 0, len(c.Participants))
	for _, p := range c.Participants {
		out = append(out, model.Participant(strings.TrimSpace(p)))
	}
	return out
}

// Validate checks settings that the run cannot recover from.
func (c Config) Validate() error {
	if c.Token.Length < MinTokenLength || c.Token.Length > MaxTokenLength {
		return fmt.Errorf("token.length must be between %d and %d, got %d", MinTokenLength, MaxTokenLength, c.Token.Length)
	}
	if c.Match.MaxAttempts < 1 {
		return fmt.Errorf("match.max_attempts must be positive, got %d", c.Match.MaxAttempts)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	return nil
}
