// SPDX-License-Identifier: MIT

package equation

import "errors"

var (
	// ErrMalformedEquation is returned when the text does not contain exactly
	// one '=', has an empty left side, or leaves a dangling sign.
	ErrMalformedEquation = errors.New("equation: malformed equation")

	// ErrInvalidNumber indicates that the right-hand side is not a finite number.
	ErrInvalidNumber = errors.New("equation: invalid number")

	// ErrUnknownVariable indicates a term that references none of the variables.
	ErrUnknownVariable = errors.New("equation: term references no known variable")

	// ErrInvalidCoefficient indicates a term whose coefficient is not a finite number.
	ErrInvalidCoefficient = errors.New("equation: invalid coefficient")

	// ErrAmbiguousTerm indicates a term that names more than one variable,
	// or the same variable more than once.
	ErrAmbiguousTerm = errors.New("equation: ambiguous term")
)
