// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render produces the HTML documents. Rendering is pure: it returns
// bytes and never touches the filesystem. A personal page only ever carries
// the giver's and the receiver's names; the landing page carries none.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/model"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl    *template.Template
	version string
}

// Option customizes a Renderer during construction.
type Option func(*Renderer)

// WithVersion sets the version string printed in the page footer.
func WithVersion(v string) Option {
	return func(r *Renderer) { r.version = v }
}

// New parses the embedded templates.
func New(opts ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	r := &Renderer{tmpl: tmpl}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type pageData struct {
	Lang     string
	Version  string
	Event    model.Event
	Text     map[string]string
	Giver    string
	Receiver string
}

// Personal renders the page revealing receiver to giver.
func (r *Renderer) Personal(giver, receiver model.Participant, ev model.Event) ([]byte, error) {
	data := r.data(ev)
	data.Giver = giver.String()
	data.Receiver = receiver.String()
	return r.execute("personal.html.tmpl", data)
}

// Landing renders the shared index page.
func (r *Renderer) Landing(ev model.Event) ([]byte, error) {
	return r.execute("landing.html.tmpl", r.data(ev))
}

func (r *Renderer) data(ev model.Event) pageData {
	vars := map[string]any{"Group": ev.Group, "Year": ev.Year, "Contact": ev.Contact}
	text := map[string]string{}
	for _, id := range []string{
		"page.title", "page.heading", "page.subheading", "page.greeting",
		"page.reveal_button", "page.you_give_to", "page.info_heading",
		"page.date_label", "page.location_label", "page.budget_label",
		"page.rules_heading", "page.closing", "landing.welcome", "landing.lost_link",
	} {
		text[id] = i18n.T(id, vars)
	}
	return pageData{
		Lang:    i18n.Lang(),
		Version: r.version,
		Event:   ev,
		Text:    text,
	}
}

func (r *Renderer) execute(name string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render: %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
