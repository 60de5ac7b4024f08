// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core wires one run together: match, publish, report. Each step
// runs once and in order; the first error ends the run.
package core

import (
	"fmt"
	"io"

	"github.com/toeirei/secretsanta/internal/core/match"
	"github.com/toeirei/secretsanta/internal/core/rng"
	"github.com/toeirei/secretsanta/internal/core/token"
	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/logging"
	"github.com/toeirei/secretsanta/internal/model"
	"github.com/toeirei/secretsanta/internal/publish"
	"github.com/toeirei/secretsanta/internal/render"
	"github.com/toeirei/secretsanta/internal/report"
)

// RunOptions describes a single generation run.
type RunOptions struct {
	Participants []model.Participant
	Event        model.Event

	Seed        uint64
	MaxAttempts int
	TokenLength int

	OutputDir   string
	BaseURL     string
	Precompress bool
	// Sink overrides the directory sink built from OutputDir.
	Sink publish.Sink

	MappingPath  string
	ForceMapping bool

	Copy    bool
	Styled  bool
	Version string
}

// Result is what a successful run produced.
type Result struct {
	Assignment model.Assignment
	Links      []model.PublishedLink
	// MappingPath is empty when no mapping file was written.
	MappingPath string
}

// Check validates participants without generating anything.
func Check(participants []model.Participant) error {
	return match.Validate(participants)
}

// Generate runs the whole pipeline and prints progress plus the final
// report to out.
func Generate(opts RunOptions, out io.Writer) (*Result, error) {
	fmt.Fprintln(out, i18n.T("cli.banner", map[string]any{"Group": opts.Event.Group}))
	fmt.Fprintln(out)

	if err := Check(opts.Participants); err != nil {
		return nil, err
	}

	r := rng.New(opts.Seed)
	if opts.Seed != 0 {
		logging.Warnf("using fixed seed %d: assignments and page tokens are reproducible", opts.Seed)
	}

	fmt.Fprintln(out, i18n.T("cli.matching"))
	matcher := match.New(match.WithRand(r), match.WithMaxAttempts(opts.MaxAttempts))
	assignment, err := matcher.Match(opts.Participants)
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(render.WithVersion(opts.Version))
	if err != nil {
		return nil, err
	}
	sink := opts.Sink
	if sink == nil {
		sink = publish.DirSink{Dir: opts.OutputDir}
	}
	publisher := publish.New(sink, renderer,
		publish.WithTokens(token.New(r, opts.TokenLength)),
		publish.WithBaseURL(opts.BaseURL),
		publish.WithPrecompress(opts.Precompress),
		publish.WithProgress(out),
	)

	fmt.Fprintln(out)
	fmt.Fprintln(out, i18n.T("cli.rendering"))
	links, err := publisher.Publish(assignment, opts.Event)
	if err != nil {
		return nil, err
	}

	res := &Result{Assignment: assignment, Links: links}

	fmt.Fprintln(out)
	if opts.MappingPath == "" {
		fmt.Fprintln(out, i18n.T("cli.mapping_disabled"))
	} else {
		if err := report.SaveMapping(opts.MappingPath, links, opts.ForceMapping); err != nil {
			return res, err
		}
		res.MappingPath = opts.MappingPath
		fmt.Fprintln(out, i18n.T("cli.mapping_written", opts.MappingPath))
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Banner(i18n.T("cli.complete"), opts.Styled))
	fmt.Fprintln(out)
	fmt.Fprintln(out, i18n.T("cli.files_in", outDir))
	fmt.Fprintln(out, i18n.T("cli.files_landing"))
	fmt.Fprintln(out, i18n.T("cli.files_pages", len(links)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, i18n.T("cli.urls_heading"))
	if err := report.Write(out, links, opts.Styled); err != nil {
		return res, err
	}

	if opts.Copy {
		// The pages are already written; a missing clipboard is not fatal.
		if err := report.Copy(links); err != nil {
			logging.Warnf("%v", err)
		} else {
			fmt.Fprintln(out, i18n.T("cli.copied"))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, i18n.T("cli.goodbye"))
	return res, nil
}
