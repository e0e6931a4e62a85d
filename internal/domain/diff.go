package domain

import (
	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders the change from current to want as a unified diff of
// path. A nil side is shown as /dev/null.
func unifiedDiff(current, want []byte, path string) string {
	from, to := path, path
	if current == nil {
		from = "/dev/null"
	}

	if want == nil {
		to = "/dev/null"
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(want)),
		FromFile: from,
		ToFile:   to,
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}
