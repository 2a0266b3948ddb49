package contract

import "errors"

// Failure taxonomy shared across layers. Repositories wrap store errors
// around these sentinels; handlers map them to HTTP statuses with
// errors.Is.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrShopNotFound    = errors.New("shop not found")
	ErrValidation      = errors.New("validation failed")
)
