package imaging

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Magic byte signatures of the accepted upload types, by lowercase extension.
var magicBytes = map[string][]byte{
	".jpg":  {0xFF, 0xD8, 0xFF},
	".jpeg": {0xFF, 0xD8, 0xFF},
	".png":  {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
}

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateUpload checks that an uploaded profile picture is what its name
// claims: the extension is whitelisted, the content starts with the
// matching signature and sniffs as an image. Failures wrap ErrNotAnImage,
// or ErrTooLarge when the header declares oversized dimensions.
func ValidateUpload(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	sig, ok := magicBytes[ext]
	if !ok {
		return fmt.Errorf("%w: extension %q not allowed", ErrNotAnImage, ext)
	}

	if !bytes.HasPrefix(data, sig) {
		return fmt.Errorf("%w: content does not match extension %s", ErrNotAnImage, ext)
	}

	if mime := http.DetectContentType(data); !allowedMIME[mime] {
		return fmt.Errorf("%w: detected type %s", ErrNotAnImage, mime)
	}
	return CheckDimensions(data)
}
