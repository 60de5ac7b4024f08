// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package publish turns an assignment into files: one page per giver named
// after a slug of their name plus a random token, and a shared index.html.
// Writes are not transactional; the first failure aborts and whatever was
// already written stays on disk.
package publish

import (
	"fmt"
	"io"
	"strings"

	"github.com/toeirei/secretsanta/internal/core/rng"
	"github.com/toeirei/secretsanta/internal/core/slug"
	"github.com/toeirei/secretsanta/internal/core/token"
	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/logging"
	"github.com/toeirei/secretsanta/internal/model"
)

// IndexFile is the well-known name of the landing page.
const IndexFile = "index.html"

// PageRenderer is the rendering side of publishing.
type PageRenderer interface {
	Personal(giver, receiver model.Participant, ev model.Event) ([]byte, error)
	Landing(ev model.Event) ([]byte, error)
}

// Publisher writes rendered pages to a Sink.
type Publisher struct {
	sink     Sink
	renderer PageRenderer
	tokens   *token.Generator
	baseURL  string
	progress io.Writer
}

// Option customizes a Publisher during construction.
type Option func(*Publisher)

// WithBaseURL prefixes page URLs. Without it URLs are bare filenames.
func WithBaseURL(u string) Option {
	return func(p *Publisher) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithTokens sets the token generator.
func WithTokens(g *token.Generator) Option {
	return func(p *Publisher) {
		if g != nil {
			p.tokens = g
		}
	}
}

// WithPrecompress also writes a gzip copy of every page.
func WithPrecompress(enabled bool) Option {
	return func(p *Publisher) {
		if enabled {
			p.sink = gzipSink{next: p.sink}
		}
	}
}

// WithProgress prints a line per written file to w.
func WithProgress(w io.Writer) Option {
	return func(p *Publisher) { p.progress = w }
}

// New builds a Publisher. Options are applied in order, so WithPrecompress
// wraps the sink given here.
func New(sink Sink, renderer PageRenderer, opts ...Option) *Publisher {
	p := &Publisher{
		sink:     sink,
		renderer: renderer,
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tokens == nil {
		p.tokens = token.New(rng.New(0), token.DefaultLength)
	}
	return p
}

// URL returns the public address of filename.
func (p *Publisher) URL(filename string) string {
	if p.baseURL == "" {
		return filename
	}
	return p.baseURL + "/" + filename
}

// Publish writes one page per pair, in giver order, then the landing page.
func (p *Publisher) Publish(a model.Assignment, ev model.Event) ([]model.PublishedLink, error) {
	links := make([]model.PublishedLink, 0, a.Len())
	used := map[string]bool{IndexFile: true}

	for _, pair := range a.Pairs() {
		link := p.link(pair, used)

		page, err := p.renderer.Personal(pair.Giver, pair.Receiver, ev)
		if err != nil {
			return links, err
		}
		if err := p.sink.WriteFile(link.Filename, page); err != nil {
			return links, err
		}
		logging.Debugf("wrote page for %s", pair.Giver)
		fmt.Fprintln(p.progress, i18n.T("cli.created", link.Filename))
		links = append(links, link)
	}

	fmt.Fprintln(p.progress, i18n.T("cli.landing"))
	landing, err := p.renderer.Landing(ev)
	if err != nil {
		return links, err
	}
	if err := p.sink.WriteFile(IndexFile, landing); err != nil {
		return links, err
	}
	fmt.Fprintln(p.progress, i18n.T("cli.created", IndexFile))

	return links, nil
}

// link derives a filename that has not been used in this run.
func (p *Publisher) link(pair model.Pair, used map[string]bool) model.PublishedLink {
	base := slug.Base(pair.Giver.String())
	for {
		tok := p.tokens.Next()
		name := base + "-" + tok + ".html"
		if used[name] {
			logging.Warnf("filename collision on %s, drawing a new token", name)
			continue
		}
		used[name] = true
		return model.PublishedLink{
			Giver:    pair.Giver,
			Receiver: pair.Receiver,
			Token:    tok,
			Base:     base,
			Filename: name,
			URL:      p.URL(name),
		}
	}
}
