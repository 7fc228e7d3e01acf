package sniff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/charmap"
)

// DefaultHeadSize is the prefix length read by content predicates.
const DefaultHeadSize = 4096

const XLSXMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Head reads at most n bytes from the start of the file.
func Head(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}

// HeadText is Head decoded to UTF-8.
func HeadText(path string, n int) (string, error) {
	head, err := Head(path, n)
	if err != nil {
		return "", err
	}
	return DecodeText(head), nil
}

// ReadText reads the whole file decoded to UTF-8.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(content), nil
}

// DecodeText strips a UTF-8 BOM and converts legacy Windows-1252 content to UTF-8.
// A prefix cut in the middle of a multi-byte sequence is still treated as UTF-8.
func DecodeText(content []byte) string {
	content = bytes.TrimPrefix(content, utf8BOM)
	if validUTF8Prefix(content) {
		return string(content)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(decoded)
}

func validUTF8Prefix(content []byte) bool {
	if utf8.Valid(content) {
		return true
	}
	// Allow a truncated rune at the end of a bounded read.
	for i := 1; i < utf8.UTFMax && i <= len(content); i++ {
		if utf8.Valid(content[:len(content)-i]) {
			return !utf8.FullRune(content[len(content)-i:])
		}
	}
	return false
}

// MIME detects the content type of the file.
func MIME(path string) (*mimetype.MIME, error) {
	return mimetype.DetectFile(path)
}

// IsXLSX reports whether the file content is an Office Open XML workbook.
func IsXLSX(path string) bool {
	mime, err := MIME(path)
	if err != nil {
		return false
	}
	return mime.Is(XLSXMime)
}

// IsText reports whether the file content is text, whatever its encoding.
func IsText(path string) bool {
	mime, err := MIME(path)
	if err != nil {
		return false
	}
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// ContainsFold reports whether any of the needles occurs in s, ignoring case.
func ContainsFold(s string, needles ...string) bool {
	upper := strings.ToUpper(s)
	for _, n := range needles {
		if strings.Contains(upper, strings.ToUpper(n)) {
			return true
		}
	}
	return false
}

var xmlEncodingPattern = regexp.MustCompile(`^\s*<\?xml[^>]*encoding\s*=\s*["']([A-Za-z0-9._-]+)["']`)

// XMLEncoding returns the encoding declared by an XML prolog, or "".
func XMLEncoding(head []byte) string {
	m := xmlEncodingPattern.FindSubmatch(bytes.TrimPrefix(head, utf8BOM))
	if m == nil {
		return ""
	}
	return strings.ToLower(string(m[1]))
}

// XMLReader returns the content ready for an XML decoder that honours declared charsets. Content
// without a declared encoding is converted to UTF-8 first.
func XMLReader(content []byte) io.Reader {
	if enc := XMLEncoding(content); enc != "" && enc != "utf-8" {
		return bytes.NewReader(content)
	}
	return strings.NewReader(DecodeText(content))
}
