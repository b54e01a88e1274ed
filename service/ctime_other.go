//go:build !linux && !windows

package service

import (
	"os"
	"time"
)

// creationTime falls back to the modification time on platforms without a
// portable creation timestamp
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
