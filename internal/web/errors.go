package web

import "errors"

var ErrUnknownPartial = errors.New("unknown partial")
