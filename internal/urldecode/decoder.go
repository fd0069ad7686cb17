package urldecode

import (
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/strand-web/strand/internal/hexconv"
)

// Decode translates percent-encoded sequences into their raw octets. The policy is
// deliberately permissive: sequences that cannot be decoded, either truncated or
// containing non-hex digits, pass through untouched instead of failing the request.
// Decoding is therefore total, and idempotent on strings without '%' sequences.
func Decode(src string) string {
	if strings.IndexByte(src, '%') == -1 {
		return src
	}

	return uf.B2S(Append(make([]byte, 0, len(src)), src))
}

// Append appends the decoded form of src to dst.
func Append(dst []byte, src string) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '%' && i+2 < len(src) && hexconv.IsDigit(src[i+1]) && hexconv.IsDigit(src[i+2]) {
			dst = append(dst, hexconv.Parse(src[i+1])<<4|hexconv.Parse(src[i+2]))
			i += 2
			continue
		}

		dst = append(dst, c)
	}

	return dst
}
