package tree

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// nodeInfo presents a tree node as an os.FileInfo for icon lookup. Status
// entries carry no file metadata, so everything but the name is zero.
type nodeInfo struct {
	name  string
	isDir bool
}

func (i nodeInfo) Name() string { return i.name }

func (i nodeInfo) Size() int64 { return 0 }

func (i nodeInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i nodeInfo) ModTime() time.Time { return time.Time{} }

func (i nodeInfo) IsDir() bool { return i.isDir }

func (i nodeInfo) Sys() any { return nil }

func deviconForName(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	style := devicons.IconForInfo(nodeInfo{name: name, isDir: isDir})
	return style.Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
