//go:build windows

package service

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file creation time recorded by NTFS
func creationTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, st.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
