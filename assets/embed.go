// Package assets embeds the default word lists used when no word files are configured.
package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) {
	return FS.Open(AnswersFile)
}

// Allowed opens the embedded allowed-guess list.
func Allowed() (io.ReadCloser, error) {
	return FS.Open(AllowedFile)
}
