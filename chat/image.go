package chat

import (
	"strings"

	"github.com/vincent-petithory/dataurl"
)

// validImagePayload reports whether payload is a syntactically valid data
// URI that is base64-encoded and names an explicit MIME type, e.g.
// "data:image/png;base64,...". The decoded bytes are not inspected; the
// client renders whatever the browser accepts.
func validImagePayload(payload string) bool {
	du, err := dataurl.DecodeString(payload)
	if err != nil || du.Encoding != dataurl.EncodingBase64 {
		return false
	}
	// dataurl defaults an omitted media type to text/plain; require the
	// MIME marker to be spelled out.
	head, _, ok := strings.Cut(strings.TrimPrefix(payload, "data:"), ",")
	return ok && strings.Contains(head, "/")
}
