package errors

import "errors"

var (
	ErrMissingBotToken      = errors.New("TELEGRAM_BOT_TOKEN is not set; cannot call Telegram API")
	ErrMissingPublicBaseURL = errors.New("PUBLIC_BASE_URL is not set; cannot compute webhook URL")
	ErrMissingWebhookSecret = errors.New("TELEGRAM_WEBHOOK_SECRET is not set; webhook would be unprotected")
	ErrMissingWordPressURL  = errors.New("WP_BASE_URL is not set; cannot talk to WordPress")
	ErrMissingWordPressAuth = errors.New("WP_USERNAME / WP_APP_PASSWORD not set; cannot auth to WordPress")
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret")
	ErrWebhookNotConfigured = errors.New("telegram refused webhook configuration")
)
