package blob

import (
	"bytes"

	"github.com/go-git/go-git/v5/utils/binary"
)

// IsBinary reports whether content looks like binary data rather than
// text, using git's heuristic: a NUL byte anywhere in the first 8000
// bytes. Diff suppresses edit scripts for binary content, so callers
// can use this to tell "no differences" from "diff suppressed".
func IsBinary(content []byte) bool {
	bin, err := binary.IsBinary(bytes.NewReader(content))
	return err == nil && bin
}
