// debug.go
package loadenv

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DebugEnvVar lists the debug channels that write to stderr.
const DebugEnvVar = "DEBUG"

// debugEnabled reports whether name is selected by patterns, a comma or space
// separated list of names. "*" matches any run of characters and a leading
// "-" excludes matching names.
func debugEnabled(patterns, name string) bool {
	enabled := false
	for _, pat := range strings.FieldsFunc(patterns, func(r rune) bool { return r == ',' || r == ' ' }) {
		if rest, ok := strings.CutPrefix(pat, "-"); ok {
			if globMatch(rest, name) {
				return false
			}
			continue
		}
		if globMatch(pat, name) {
			enabled = true
		}
	}
	return enabled
}

func globMatch(pat, s string) bool {
	parts := strings.Split(pat, "*")
	if len(parts) == 1 {
		return pat == s
	}
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	last := parts[len(parts)-1]
	for _, p := range parts[1 : len(parts)-1] {
		i := strings.Index(s, p)
		if i < 0 {
			return false
		}
		s = s[i+len(p):]
	}
	return strings.HasSuffix(s, last)
}

// debugLogger returns the logger for channel name.
func debugLogger(base *slog.Logger, name string) *slog.Logger {
	if base != nil {
		return base.With(slog.String("debug", name))
	}
	var w io.Writer = io.Discard
	if debugEnabled(os.Getenv(DebugEnvVar), name) {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With(slog.String("debug", name))
}
