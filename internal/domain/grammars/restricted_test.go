package grammars

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestrictedParser_SegmentsAreSubstrings(t *testing.T) {
	src := " crate :: shapes ::\n\tWidget "

	tp, err := NewRestrictedParser().Parse(src)
	require.NoError(t, err)
	require.Equal(t, []string{"shapes", "Widget"}, tp.Segments())

	start := uintptr(unsafe.Pointer(unsafe.StringData(src)))
	end := start + uintptr(len(src))

	for _, segment := range tp.Segments() {
		data := uintptr(unsafe.Pointer(unsafe.StringData(segment)))
		assert.True(t, data >= start && data+uintptr(len(segment)) <= end, "segment %q is not a sub-string of the input", segment)
	}
}
