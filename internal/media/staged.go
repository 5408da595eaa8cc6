package media

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
)

const imagePrefix = "image/"

// StagedImage is a photo validated client-side and held until the user
// confirms the dialog it belongs to. Nothing is uploaded here; the staged
// bytes are handed to the caller on confirm.
type StagedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StageImage validates type and size before staging. Only image/* content
// up to maxBytes is accepted; both checks fail before any network call.
func StageImage(filename string, data []byte, maxBytes int64) (*StagedImage, error) {
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please choose an image")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Image must be smaller than %dMB", maxBytes>>20))
	}

	contentType := sniffContentType(filename, data)
	if !strings.HasPrefix(contentType, imagePrefix) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please select an image file")
	}

	return &StagedImage{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// sniffContentType prefers the content bytes; the filename extension is
// only consulted when sniffing yields the generic fallback.
func sniffContentType(filename string, data []byte) string {
	detected := http.DetectContentType(data)
	if detected != "application/octet-stream" {
		return normalizeMediaType(detected)
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
		return normalizeMediaType(byExt)
	}
	return detected
}

func normalizeMediaType(value string) string {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return value
	}
	return strings.ToLower(mediaType)
}
