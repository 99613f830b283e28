package proc

import "errors"

// pipeline error categories, used for log prefixes and tested via errors.Is
var (
	ErrCollection   = errors.New("collection failed")
	ErrRegistration = errors.New("registration failed")
	ErrFetch        = errors.New("content fetch failed")
	ErrAnalysis     = errors.New("analysis failed")
)
