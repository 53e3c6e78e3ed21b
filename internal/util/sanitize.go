package util

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fadilmartias/career-coach/internal/apperr"
)

// Models are told to answer with bare JSON but still tend to wrap it in
// markdown code fences, optionally tagged with a language.
var codeFenceRe = regexp.MustCompile("```(?:json)?\n?")

// CleanModelJSON strips code-fence markers and surrounding whitespace from a
// raw model reply.
func CleanModelJSON(raw string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))
}

// DecodeModelJSON cleans a raw model reply and unmarshals it into v. There is
// no fallback: anything that is not valid JSON after fence-stripping fails.
func DecodeModelJSON(raw string, v any) error {
	cleaned := CleanModelJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrParse, err)
	}
	return nil
}
