package qparams

import (
	"strings"

	"github.com/strand-web/strand/internal/urldecode"
	"github.com/strand-web/strand/kv"
)

// Into feeds parsed pairs into a kv.Storage. Duplicate keys are all kept, so that
// both multi-value access and last-wins lookup stay available.
func Into(s *kv.Storage) func(string, string) {
	return func(k, v string) {
		s.Add(k, v)
	}
}

// Parse decomposes a raw query string into key=value pairs on '&'. Both sides are
// percent-decoded independently. A pair without '=' yields an empty value. Parsing
// never fails: query strings that look malformed still produce whatever pairs can
// be extracted, mirroring the permissive URI decoding policy.
func Parse(data string, cb func(k, v string)) {
	for len(data) > 0 {
		pair := data
		if amp := strings.IndexByte(data, '&'); amp != -1 {
			pair, data = data[:amp], data[amp+1:]
		} else {
			data = ""
		}

		if len(pair) == 0 {
			continue
		}

		if eq := strings.IndexByte(pair, '='); eq != -1 {
			cb(urldecode.Decode(pair[:eq]), urldecode.Decode(pair[eq+1:]))
		} else {
			cb(urldecode.Decode(pair), "")
		}
	}
}
