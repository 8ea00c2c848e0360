package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// StoredFileName generates the internal blob name for an upload: nanosecond
// timestamp plus random suffix plus the original extension. The user-supplied
// name never becomes part of a storage path, and two submissions in the same
// instant cannot collide thanks to the random suffix.
func StoredFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		ext = ""
	}

	suffix := make([]byte, 4)
	rand.Read(suffix)

	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), ext)
}
