package app

import "errors"

var (
	errNoGenerator = errors.New("no tutorial generator configured")
	errNoCurator   = errors.New("no curator configured")
)
