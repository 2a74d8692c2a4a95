package alert

import "errors"

var ErrUnknownType = errors.New("unknown alert type")
