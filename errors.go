package loadenv

import "errors"

var (
	// ErrInvalidArgument is returned when a load option cannot be used,
	// such as a project path that is absolute or leaves the configs directory.
	ErrInvalidArgument = errors.New("loadenv: invalid argument")

	// ErrParse is returned when a config file exists but cannot be parsed.
	ErrParse = errors.New("loadenv: parse failure")
)
