package stats

import "errors"

var ErrInvalidEmail = errors.New("invalid email")
