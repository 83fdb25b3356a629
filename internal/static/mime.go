package static

import (
	"mime"
	"path"

	"github.com/gabriel-vasile/mimetype"
)

// number of leading bytes handed to content sniffing
const SniffLen = 3072

// picks the content type by extension and sniffs head when the extension is unknown
func ContentType(name string, head []byte) string {
	if ext := path.Ext(name); ext != "" {
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
	}

	return mimetype.Detect(head).String()
}
