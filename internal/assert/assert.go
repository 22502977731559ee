package assert

import (
	"fmt"
	"testing"

	assert2 "github.com/stretchr/testify/assert"

	"github.com/slatedb/byterange-go/internal/types"
)

func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		panic(fmt.Sprintf("Assertion Failed: %s\n", fmt.Sprintf(errMsg, arg...)))
	}
}

// Bounded panics if any range is empty or extends past total.
func Bounded(ranges []types.ByteRange, total uint64) {
	for _, r := range ranges {
		True(r.Length > 0, "range %s is empty", r)
		True(r.Offset < total && r.Length <= total-r.Offset, "range %s exceeds size %d", r, total)
	}
}

// Ranges is a test helper to verify a parse result against a list of
// (offset, length) pairs.
func Ranges(t *testing.T, got []types.ByteRange, want ...[2]uint64) bool {
	t.Helper()
	if !assert2.Len(t, got, len(want)) {
		return false
	}
	for i, w := range want {
		if !assert2.Equal(t, types.ByteRange{Offset: w[0], Length: w[1]}, got[i], "range %d", i) {
			return false
		}
	}
	return true
}
