package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const (
	nameScanLines = 5
	nameMinLength = 2
	nameMaxLength = 50
)

var contactMarkers = []string{"@", ".com", "+", "www", "http"}

// GuessName returns the first of the leading non-empty resume lines that
// looks like a person's name, or models.DefaultCandidateName.
func GuessName(resumeText string) string {
	scanned := 0
	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if scanned == nameScanLines {
			break
		}
		scanned++

		if looksLikeName(line) {
			return line
		}
	}

	return models.DefaultCandidateName
}

func looksLikeName(line string) bool {
	length := utf8.RuneCountInString(line)
	if length <= nameMinLength || length >= nameMaxLength {
		return false
	}

	for _, marker := range contactMarkers {
		if strings.Contains(line, marker) {
			return false
		}
	}

	return !isSingleCase(line)
}

// isSingleCase reports whether every cased letter in s has the same case.
// A line without cased letters is not single-case.
func isSingleCase(s string) bool {
	var upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return upper != lower
}
