package services

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const UsernameMaxLength = 80

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrUsernameInvalid        = errors.New("invalid username")
)

// NormalizeUsername trims surrounding space. Usernames are display names and
// keep their case and inner spacing.
func NormalizeUsername(raw string) string {
	username := strings.TrimSpace(raw)
	if username == "" || utf8.RuneCountInString(username) > UsernameMaxLength {
		return ""
	}
	if strings.ContainsAny(username, "/\\?#") {
		return ""
	}
	return username
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := NormalizeUsername(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, password, nil
}
