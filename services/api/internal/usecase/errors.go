package usecase

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidAction      = errors.New("action must be like or dislike")
	ErrInvalidTarget      = errors.New("invalid targetId")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("only image uploads are allowed")
)
