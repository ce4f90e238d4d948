package extract

import "strings"

// decodeText reads plain-text uploads as UTF-8; invalid sequences become U+FFFD.
func decodeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
