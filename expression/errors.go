// SPDX-License-Identifier: MIT

package expression

import "errors"

// ErrExpression is returned when an expression cannot be compiled or
// evaluated. The underlying expr error is wrapped after it.
var ErrExpression = errors.New("expression: invalid expression")
