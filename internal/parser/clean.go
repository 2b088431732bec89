package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	errNoJSON = errors.New("no valid JSON found in model output")

	jsonBlockRe     = regexp.MustCompile(`\{[\s\S]*\}`)
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
)

// cleanFences strips markdown code fences the model wraps around JSON.
func cleanFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// decodeJSON unmarshals the first JSON object found in model output into out,
// tolerating fences and trailing commas.
func decodeJSON(raw string, out any) error {
	text := cleanFences(raw)
	if text == "" {
		return ErrEmptyOutput
	}

	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}

	block := jsonBlockRe.FindString(text)
	if block == "" {
		return errNoJSON
	}
	block = trailingCommaRe.ReplaceAllString(block, "$1")
	if err := json.Unmarshal([]byte(block), out); err != nil {
		return errNoJSON
	}
	return nil
}
