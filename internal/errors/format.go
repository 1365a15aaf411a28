// Package errors provides error formatting for rrun CLI output.
package errors

import (
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose adds the error code, context keys and the underlying cause.
	Verbose bool
}

// Context keys printed in verbose mode, in order.
var contextKeys = []string{
	"op",
	"tool",
	"command",
	"input",
	"path",
	"config",
	"cwd",
}

const maxValueLen = 256

// Format formats an error for display without I/O.
// The first line is always "rrun: <message>".
func Format(err error, opts PrintOptions) string {
	if err == nil || IsSilent(err) {
		return ""
	}

	var sb strings.Builder

	ce, ok := AsCodedError(err)
	if !ok {
		sb.WriteString("rrun: ")
		sb.WriteString(sanitizeValue(err.Error(), 4*maxValueLen))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("rrun: ")
	sb.WriteString(ce.Msg)
	sb.WriteString("\n")

	if !opts.Verbose {
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(ce.Code))
	sb.WriteString("\n")

	printed := make(map[string]bool)
	for _, key := range contextKeys {
		val := ce.Details[key]
		if val == "" {
			continue
		}
		printed[key] = true
		writeKV(&sb, key, val)
	}

	var extra []string
	for key := range ce.Details {
		if !printed[key] && key != "hint" {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		if ce.Details[key] != "" {
			writeKV(&sb, key, ce.Details[key])
		}
	}

	if ce.Cause != nil {
		writeKV(&sb, "cause", ce.Cause.Error())
	}

	if hint := ce.Details["hint"]; hint != "" {
		sb.WriteString("hint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeKV(sb *strings.Builder, key, val string) {
	sb.WriteString(key)
	sb.WriteString(": ")
	sb.WriteString(sanitizeValue(val, maxValueLen))
	sb.WriteString("\n")
}

// Print writes the error to w in the default (single-line) format.
func Print(w io.Writer, err error) {
	PrintWithOptions(w, err, PrintOptions{})
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	out := Format(err, opts)
	if out == "" {
		return
	}
	_, _ = io.WriteString(w, out)
}

// sanitizeValue keeps a value on one line:
// trailing whitespace trimmed, newlines escaped, truncated to maxLen.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}
