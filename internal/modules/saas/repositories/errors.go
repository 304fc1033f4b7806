package repositories

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrBusinessNotFound     = errors.New("business not found")
)
