package domain

import "errors"

// Auth failures. Each maps to a fixed HTTP status and message in the API
// error handler; none are retried internally.
var (
	ErrNoToken            = errors.New("no token provided")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrGraceExpired       = errors.New("token expired beyond grace period")
	ErrPrincipalNotFound  = errors.New("principal no longer exists")
	ErrForbidden          = errors.New("admin access required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Upload failures.
var (
	ErrUnsupportedImage = errors.New("only image files are allowed (jpeg, jpg, png, gif, webp, svg)")
	ErrImageTooLarge    = errors.New("file size is too large, maximum size is 5MB")
	ErrNoFile           = errors.New("no file provided")
)

// Resource failures.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrSkillNotFound          = errors.New("skill not found")
	ErrExperienceNotFound     = errors.New("experience not found")
	ErrProjectNotFound        = errors.New("project not found")
	ErrContactMessageNotFound = errors.New("contact message not found")
)
