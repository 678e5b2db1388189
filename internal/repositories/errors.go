package repositories

import "errors"

var (
	ErrJobNotFound     = errors.New("job posting not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrUserNotFound    = errors.New("user not found")
)
