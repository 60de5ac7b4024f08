// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It loads
// configuration and hands off to the `core` pipeline. CLI code should remain
// thin and delegate the actual work to `core`.
package cli
