package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxImageBytes caps uploaded images at 2048 kilobytes.
const MaxImageBytes = 2048 * 1024

var allowedImageExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// Image checks an uploaded file against the allowed image types and size cap.
// The violation is reported under the given field name.
func Image(field string, fh *multipart.FileHeader) Errors {
	errs := Errors{}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] {
		errs.Add(field, fmt.Sprintf("the %s must be a file of type: jpeg, png, jpg, gif, svg, webp", field))
	}
	if fh.Size > MaxImageBytes {
		errs.Add(field, fmt.Sprintf("the %s must not be greater than 2048 kilobytes", field))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
