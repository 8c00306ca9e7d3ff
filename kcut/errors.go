package kcut

import "errors"

// ErrKInvalid is returned when k is out of the valid range [2, n] for a
// tree on n vertices.
var ErrKInvalid = errors.New("kcut: k must satisfy 2 <= k <= n")
