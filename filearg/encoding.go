package filearg

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// isPassthroughEncoding returns true when name denotes a UTF-8 variant,
// in which case source bytes are handed to the consumer untouched.
func isPassthroughEncoding(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8", "utf8-lossy", "utf-8-lossy":
		return true
	}
	return false
}

// recode decodes b using the named encoding and returns the text
// re-encoded as UTF-8.  Consumers downstream of the normalizer never see
// non-UTF-8 bytes.
func recode(b []byte, name string) ([]byte, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &EncodingError{Encoding: name, Err: err}
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, &EncodingError{Encoding: name, Err: err}
	}
	return out, nil
}
