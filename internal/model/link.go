// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// PublishedLink describes the page generated for one giver during a run.
// Links are never reused across runs.
type PublishedLink struct {
	Giver    Participant
	Receiver Participant
	Token    string
	Base     string // filesystem-safe form of the giver's name
	Filename string
	URL      string
}

// Event carries the presentation details shown on every page.
type Event struct {
	Group    string   `mapstructure:"group" yaml:"group"`
	Title    string   `mapstructure:"title" yaml:"title"`
	Year     int      `mapstructure:"year" yaml:"year"`
	Date     string   `mapstructure:"date" yaml:"date"`
	Location string   `mapstructure:"location" yaml:"location"`
	Budget   string   `mapstructure:"budget" yaml:"budget"`
	Rules    []string `mapstructure:"rules" yaml:"rules"`
	// Contact is shown on the landing page for people who lost their link.
	Contact      string `mapstructure:"contact" yaml:"contact"`
	ContactEmail string `mapstructure:"contact_email" yaml:"contact_email"`
}
