// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "v1.0.1"
	if got := VersionOrDefault("dev"); got != "v1.0.1" {
		t.Fatalf("expected injected version, got %q", got)
	}
}
