package column

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultGroupSeparator = ","

// groupSeparator returns the digit group separator used by tag, e.g. "," for
// English or "." for German.
func groupSeparator(tag language.Tag) string {
	if tag == language.Und {
		return defaultGroupSeparator
	}

	grouped := message.NewPrinter(tag).Sprintf("%d", 1000)
	sep := strings.TrimSuffix(strings.TrimPrefix(grouped, "1"), "000")
	if sep == "" {
		return defaultGroupSeparator
	}

	return sep
}

// sprintf formats with the locale printer unless no locale was chosen.
func sprintf(tag language.Tag, format string, value any) string {
	if tag == language.Und {
		return fmt.Sprintf(format, value)
	}

	return message.NewPrinter(tag).Sprintf(format, value)
}
