package byterange

import "strconv"

const (
	HeaderRange        = "Range"
	HeaderContentRange = "Content-Range"
	HeaderAcceptRanges = "Accept-Ranges"

	// AcceptRangesBytes is the Accept-Ranges value advertising support for this package's unit.
	AcceptRangesBytes = "bytes"
)

// UnsatisfiedRange formats the Content-Range value of a 416 response.
func UnsatisfiedRange(totalSize uint64) string {
	return "bytes */" + strconv.FormatUint(totalSize, 10)
}
