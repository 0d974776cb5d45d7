package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for load and configuration failures
var (
	ErrTagMissingColumn    = goerr.NewTag("missing_column")
	ErrTagInvalidTimestamp = goerr.NewTag("invalid_timestamp")
	ErrTagInvalidConfig    = goerr.NewTag("invalid_config")
)
