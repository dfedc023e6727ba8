package constants

// リクエストヘッダー
const (
	HeaderStateToken         = "X-State-Token"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// エラーメッセージ
const (
	ErrCategoryNotFound = "Category not found"
	ErrItemNotFound     = "Item not found"
	ErrImageNotFound    = "Image not found"
	ErrOwnerNotFound    = "Owner not found"
	ErrUnexpected       = "Unexpected error"
	ErrInvalidID        = "Invalid id"
	ErrInvalidInput     = "Invalid input"
	ErrRateLimited      = "You hit the rate limit"
	ErrCounterDown      = "Rate limit counter unavailable"
)
