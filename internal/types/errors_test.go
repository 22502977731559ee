package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/slatedb/byterange-go/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestErrDropped(t *testing.T) {
	var dropped types.ErrDropped

	assert.NoError(t, dropped.If())
	dropped.Add("spec %d %q: %s", 0, "5-4", types.DropInverted)
	assert.Error(t, dropped.If())
	assert.Equal(t, []string{`spec 0 "5-4": last byte precedes first byte`}, dropped.Lines)

	dropped.Add("spec %d %q: %s", 2, "900-", types.DropBeyondEnd)
	assert.Equal(t, "spec 0 \"5-4\": last byte precedes first byte\n"+
		"spec 2 \"900-\": first byte beyond end of resource", dropped.If().Error())

	var target *types.ErrDropped
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", dropped.If()), &target))
	assert.Len(t, target.Lines, 2)
	assert.True(t, errors.Is(fmt.Errorf("wrap: %w", dropped.If()), &types.ErrDropped{}))
}

func TestByteRange(t *testing.T) {
	r := types.ByteRange{Offset: 10, Length: 91}
	assert.Equal(t, uint64(100), r.End())
	assert.Equal(t, "10:91", r.String())

	assert.Equal(t, "zero length suffix", types.DropEmptySuffix.String())
	assert.Equal(t, "unknown", types.DropReason(0).String())
}

func TestByteRange_ContentRange(t *testing.T) {
	assert.Equal(t, "bytes 10-100/200", types.ByteRange{Offset: 10, Length: 91}.ContentRange(200))
	assert.Equal(t, "bytes 0-0/1", types.ByteRange{Offset: 0, Length: 1}.ContentRange(1))
}
