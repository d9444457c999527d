// Package parser turns raw email text into the structured record the rule
// engine consumes. Parsing never fails: malformed or missing structure
// degrades to empty fields so rules stay callable unconditionally.
package parser

import (
	"regexp"
	"strings"

	"github.com/xile1310/phish-filter/internal/core"
)

var (
	fromRe    = regexp.MustCompile(`(?i)^from:\s*(.*)$`)
	subjectRe = regexp.MustCompile(`(?i)^subject:\s*(.*)$`)
	headerRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*:`)

	// addressRe pulls an email address out of a From value, with or
	// without a display name and angle brackets.
	addressRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+`)

	// urlRe matches, left to right and without overlap: scheme-prefixed
	// URLs, bare domain@host spoof forms, raw IPv4 literals, and bare
	// host/path forms. A bare domain with no path is plain text, not a URL.
	urlRe = regexp.MustCompile(`(?i)` +
		`\bhttps?://[^\s<>"']+` +
		`|\b(?:[a-z0-9-]+\.)+[a-z]{2,}@(?:[a-z0-9-]+\.)+[a-z]{2,}(?:/[^\s<>"']*)?` +
		`|\b\d{1,3}(?:\.\d{1,3}){3}(?:/[^\s<>"']*)?` +
		`|\b(?:[a-z0-9-]+\.)+[a-z]{2,}/[^\s<>"']*`)
)

// Parse builds a ParsedMessage from raw email text. The first From: and
// Subject: style header lines win; everything after the header block is
// the body. Input with no recognizable headers becomes an all-body message.
func Parse(raw string) *core.ParsedMessage {
	lines := strings.Split(raw, "\n")

	var sender, subject string
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if sender == "" {
			if m := fromRe.FindStringSubmatch(trimmed); m != nil {
				sender = strings.TrimSpace(m[1])
			}
		}
		if subject == "" {
			if m := subjectRe.FindStringSubmatch(trimmed); m != nil {
				subject = strings.TrimSpace(m[1])
			}
		}
		if sender != "" && subject != "" {
			break
		}
	}

	// The body is everything after the contiguous header block at the top.
	// Text that never looked like headers is all body.
	bodyStart := 0
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == "" || !headerRe.MatchString(trimmed) {
			break
		}
		bodyStart = i + 1
	}
	if bodyStart < len(lines) && strings.TrimRight(lines[bodyStart], "\r") == "" {
		bodyStart++
	}

	body := ""
	if bodyStart < len(lines) {
		body = strings.Join(lines[bodyStart:], "\n")
	}

	return Compose(sender, subject, body)
}

// Compose builds a ParsedMessage from already-separated fields and runs
// URL extraction over the subject and body.
func Compose(sender, subject, body string) *core.ParsedMessage {
	return &core.ParsedMessage{
		Sender:       sender,
		SenderDomain: ExtractDomain(sender),
		Subject:      subject,
		Body:         body,
		URLs:         ExtractURLs(subject + "\n" + body),
	}
}

// ExtractDomain returns the lower-cased domain of the email address in a
// From value, or "" when no address can be found.
func ExtractDomain(from string) string {
	addr := addressRe.FindString(from)
	if addr == "" {
		return ""
	}
	at := strings.LastIndex(addr, "@")
	domain := strings.ToLower(addr[at+1:])
	return strings.Trim(domain, ".-")
}

// ExtractURLs returns all URL-like substrings in text, insertion order
// preserved and duplicates retained.
func ExtractURLs(text string) []string {
	matches := urlRe.FindAllString(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		// Trailing sentence punctuation is not part of the URL
		urls = append(urls, strings.TrimRight(m, ".,;:!?)"))
	}
	return urls
}
