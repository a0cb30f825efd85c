package api

import "regexp"

var (
	passwordLengthRegex = regexp.MustCompile(`^.{8,72}$`)
	passwordUpperRegex  = regexp.MustCompile(`[A-Z]`)
	passwordLowerRegex  = regexp.MustCompile(`[a-z]`)
	passwordDigitRegex  = regexp.MustCompile(`[0-9]`)
)
