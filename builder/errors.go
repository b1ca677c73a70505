// SPDX-License-Identifier: MIT
// Package: territory/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with wrapf (method prefix + %w).
//   • Core errors (core.ErrMultiEdgeNotAllowed, ...) pass through wrapped, never replaced.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyName indicates a Territory constructor was given an empty name.
// Builders address territories by name, so every built territory needs one.
var ErrEmptyName = errors.New("builder: empty territory name")

// ErrDuplicateTerritory indicates a second Territory with an already registered name.
var ErrDuplicateTerritory = errors.New("builder: duplicate territory")

// ErrUnknownTerritory indicates a Border or Clique named a territory that no
// earlier constructor registered.
var ErrUnknownTerritory = errors.New("builder: unknown territory")

// ErrConstructFailed indicates a structural problem with the constructor list
// itself (e.g. a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// Canonical method tokens used as error prefixes.
const (
	methodTerritory = "Territory"
	methodBorder    = "Border"
	methodClique    = "Clique"
	methodCompose   = "Compose"
)

// wrapf returns "<method>: <detail>: <err>" keeping err for errors.Is.
func wrapf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
