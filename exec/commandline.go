package exec

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// FormatCommandLine renders program and args as a single line that a POSIX
// shell would split back into the same words.
//
// Words made only of ASCII letters, digits and @%+=:,./-_ are left bare.
// Anything else is wrapped in single quotes, with embedded single quotes
// escaped as '"'"'. Invalid UTF-8 is replaced with U+FFFD, so the result is
// lossy for such input.
func FormatCommandLine(program string, args []string) string {
	var b strings.Builder
	b.WriteString(quoteWord(program))
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(quoteWord(arg))
	}
	return b.String()
}

func quoteWord(word string) string {
	return shellescape.Quote(strings.ToValidUTF8(word, "\uFFFD"))
}
