// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package slug

import (
	"testing"
	"unicode"
)

func TestBase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Grégoire", "gregoire"},
		{"Jean Paul", "jean-paul"},
		{"Clémence", "clemence"},
		{"Léon", "leon"},
		{"Aurélie", "aurelie"},
		{"Annie", "annie"},
		{"  Marie   Ève  ", "marie-eve"},
		{"Jean\tPaul", "jean-paul"},
		{"François-Xavier", "francois-xavier"},
		{"Zoë O'Brien", "zoe-obrien"},
		{"Ñandú", "nandu"},
		{"Åsa", "asa"},
		{"李", Fallback},
		{"", Fallback},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Base(tc.in); got != tc.want {
				t.Fatalf("Base(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBase_OnlySafeCharacters(t *testing.T) {
	names := []string{"Grégoire", "Jean Paul", "Œdipe", "Søren Kierkegaard", "naïve café", "Dvořák"}
	for _, n := range names {
		got := Base(n)
		for _, r := range got {
			if r > unicode.MaxASCII || unicode.IsSpace(r) || unicode.IsUpper(r) {
				t.Fatalf("Base(%q) = %q contains unsafe rune %q", n, got, r)
			}
		}
	}
}
