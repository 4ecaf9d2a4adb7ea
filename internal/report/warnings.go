package report

import (
	"fmt"
	"os"
	"strings"
)

func WriteWarningsMarkdown(path string, warnings []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Comparison warnings\n\n")
	for _, warning := range warnings {
		fmt.Fprintf(&b, "- %s\n", warning)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
