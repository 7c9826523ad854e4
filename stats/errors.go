package stats

import "errors"

// ErrZeroPeriod rejects a window period below one sample.
var ErrZeroPeriod = errors.New("stats: period must be positive")
