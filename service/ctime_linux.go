//go:build linux

package service

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the closest thing Linux offers to a creation time:
// the inode change time. Falls back to the modification time when the
// platform-specific stat data is unavailable.
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
