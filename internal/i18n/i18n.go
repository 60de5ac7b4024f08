// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated strings used on generated pages and
// in console output. Translations are embedded YAML files loaded into a
// go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is used when no language is configured.
const DefaultLang = "fr"

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	available []string
)

// Init loads every embedded locale and selects lang. Unknown languages fall
// back to DefaultLang.
func Init(lang string) {
	bundle = i18n.NewBundle(language.French)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	available = available[:0]
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		available = append(available, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(available)

	current = DefaultLang
	for _, a := range available {
		if a == lang {
			current = lang
		}
	}
	localizer = i18n.NewLocalizer(bundle, current)
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied with fmt.Sprintf to the translated text.
// Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init(DefaultLang)
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Lang returns the active language.
func Lang() string {
	if localizer == nil {
		Init(DefaultLang)
	}
	return current
}

// Tag returns the active language as a BCP 47 tag.
func Tag() language.Tag {
	return language.Make(Lang())
}

// Available lists the embedded locales.
func Available() []string {
	if localizer == nil {
		Init(DefaultLang)
	}
	out := make([]string, len(available))
	copy(out, available)
	return out
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}
