// Package logutil holds helpers for keeping log output bounded.
package logutil

// TruncateForLog caps s at maxLen characters, marking the cut with "...".
// Used for attacker-controlled or unbounded values (user agents, payload
// previews) so a single request cannot flood a log line.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
