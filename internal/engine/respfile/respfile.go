// Package respfile parses compiler response files and merges their arguments
// with a unit's own compiler options under the defined precedence rules.
package respfile

import (
	"fmt"
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
)

// Parse turns the raw text of one response file into structured data. Parse
// failures are collected into Errors and void the file's entire contribution;
// they never abort anything.
func Parse(text string) domain.ResponseFileData {
	data := domain.ResponseFileData{
		OtherArguments: make(map[string][]string),
	}

	tokens, errs := tokenize(text)
	for _, token := range tokens {
		if !strings.HasPrefix(token, "-") && !strings.HasPrefix(token, "/") {
			// Bare tokens are compiler source inputs and carry no project
			// metadata.
			continue
		}
		name, value := splitFlag(token[1:])
		switch name {
		case "":
			errs = append(errs, fmt.Sprintf("empty flag %q", token))
		case "define", "d":
			if value == "" {
				errs = append(errs, fmt.Sprintf("flag %q is missing a value", token))
				continue
			}
			data.Defines = append(data.Defines, splitList(value)...)
		case "r", "reference":
			if value == "" {
				errs = append(errs, fmt.Sprintf("flag %q is missing a value", token))
				continue
			}
			data.FullPathReferences = append(data.FullPathReferences, value)
		case "unsafe":
			data.Unsafe = true
		default:
			data.OtherArguments[name] = append(data.OtherArguments[name], value)
		}
	}

	if len(errs) > 0 {
		// A malformed file contributes nothing, not even the parts that
		// parsed cleanly.
		return domain.ResponseFileData{
			OtherArguments: make(map[string][]string),
			Errors:         errs,
		}
	}
	return data
}

// tokenize splits the response file into arguments, honoring double quotes
// and skipping comment lines.
func tokenize(text string) ([]string, []string) {
	var (
		tokens   []string
		errs     []string
		current  strings.Builder
		inQuotes bool
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		for _, r := range line {
			switch {
			case r == '"':
				inQuotes = !inQuotes
			case !inQuotes && (r == ' ' || r == '\t'):
				flush()
			default:
				current.WriteRune(r)
			}
		}
		if inQuotes {
			errs = append(errs, fmt.Sprintf("unbalanced quotes in %q", strings.TrimSpace(line)))
			inQuotes = false
			current.Reset()
			continue
		}
		flush()
	}
	flush()

	return tokens, errs
}

// splitFlag splits a flag body into its lowercase name and value. Both ':'
// and '=' act as separators; the value keeps any later separators intact.
func splitFlag(body string) (string, string) {
	idx := strings.IndexAny(body, ":=")
	if idx < 0 {
		return strings.ToLower(body), ""
	}
	return strings.ToLower(body[:idx]), body[idx+1:]
}

// splitList splits a multi-valued flag value on ';' and ',', dropping empty
// entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ','
	}) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
