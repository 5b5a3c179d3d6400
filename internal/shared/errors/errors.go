package errors

import "errors"

var (
	ErrMissingBotToken = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingDomain   = errors.New("TELEGRAM_DOMAIN environment variable is required")
	ErrInvalidDomain   = errors.New("telegram_domain must be a valid hostname")
)
