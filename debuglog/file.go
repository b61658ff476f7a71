package debuglog

import (
	"log"
	"os"

	"github.com/TheEvilRoot/fynekit/internal/constants"
)

// rotate renames path to path+".old" when it exceeds maxSize, dropping any
// previous backup. Rotation failures are logged and otherwise ignored so the
// caller still gets a writable file.
func rotate(path string, maxSize int64) {
	info, err := os.Stat(path)
	if err != nil {
		return // file doesn't exist yet, nothing to rotate
	}
	if info.Size() <= maxSize {
		return
	}
	oldPath := path + ".old"
	_ = os.Remove(oldPath)
	if err := os.Rename(path, oldPath); err != nil {
		log.Printf("debuglog.rotate: failed to rotate %s: %v", path, err)
	} else {
		log.Printf("debuglog.rotate: rotated %s (size: %d bytes)", path, info.Size())
	}
}

// OpenRotated opens a log file in append mode, rotating it first when it
// already exceeds maxSize. maxSize <= 0 selects the default limit. The caller
// owns the returned file and typically passes it to log.SetOutput.
func OpenRotated(path string, maxSize int64) (*os.File, error) {
	if maxSize <= 0 {
		maxSize = constants.MaxLogFileSize
	}
	rotate(path, maxSize)
	// Append, not truncate, so recent entries survive restarts.
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
