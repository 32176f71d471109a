package transfer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/krau/tgxfer/common/utils/fsutil"
	"github.com/krau/tgxfer/pkg/tfile"
)

const nameTimeLayout = "20060102_150405"

// ResolveDownloadName picks the local file name for file. Precedence:
// explicit name, the name in the file metadata, a name inferred from the
// MIME type, and finally one generated from userID and now.
func ResolveDownloadName(file tfile.TGFile, explicit string, userID int64, now time.Time) string {
	candidates := []string{explicit, file.Name(), nameFromMIME(file.MIMEType())}
	for _, c := range candidates {
		if name := fsutil.NormalizePathname(filepath.Base(c)); c != "" && name != "" {
			return name
		}
	}
	if userID != 0 {
		return fmt.Sprintf("%d_%s", userID, now.Format(nameTimeLayout))
	}
	return "file_" + now.Format(nameTimeLayout)
}

func nameFromMIME(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	mt := mimetype.Lookup(mimeType)
	if mt == nil || mt.Extension() == "" {
		return ""
	}
	kind, _, _ := strings.Cut(mimeType, "/")
	switch kind {
	case "video", "audio", "image", "text":
	default:
		kind = "file"
	}
	return kind + mt.Extension()
}

// ResolveUploadName picks the name a local file is uploaded under. Precedence:
// explicit name, base prefixed with userID (kept as is when already
// prefixed), and base with a unix timestamp appended to its stem.
func ResolveUploadName(base, explicit string, userID int64, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	if userID != 0 {
		prefix := fmt.Sprintf("%d_", userID)
		if strings.HasPrefix(base, prefix) {
			return base
		}
		return prefix + base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), now.Unix(), ext)
}
