package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrBriefNotFound = errors.New("brief not found")
var ErrGenerationFailed = errors.New("brief generation failed")

// BriefInfo is the listing entry for a stored brief. Title comes from the
// document's <title> tag, CreatedAt from storage metadata.
type BriefInfo struct {
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}
