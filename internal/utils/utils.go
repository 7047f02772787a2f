package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

const DirIcon = "📁"

// GetFileIcon returns an emoji icon for a file based on its extension
func GetFileIcon(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".go":
		return "🐹"
	case ".rs":
		return "🦀"
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜"
	case ".py":
		return "🐍"
	case ".rb":
		return "💎"
	case ".java":
		return "☕"
	case ".cpp", ".c", ".h":
		return "⚙️"
	case ".html", ".htm":
		return "🌐"
	case ".css", ".scss", ".sass":
		return "🎨"
	case ".json", ".yaml", ".yml", ".toml":
		return "📋"
	case ".md", ".markdown":
		return "📝"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico":
		return "🖼️"
	case ".mp4", ".avi", ".mov", ".mkv":
		return "🎬"
	case ".mp3", ".wav", ".flac", ".ogg":
		return "🎵"
	case ".zip", ".tar", ".gz", ".rar", ".7z":
		return "📦"
	case ".pdf":
		return "📕"
	case ".sh", ".bash", ".zsh", ".fish":
		return "🖥️"
	default:
		return "📄"
	}
}

// EntryIcon picks the icon for a listed entry.
func EntryIcon(name string, isDir bool) string {
	if isDir {
		return DirIcon
	}
	return GetFileIcon(name)
}

// Describe summarises path for the status bar: "12 kB" for files,
// "3 items" for directories. Errors yield "".
func Describe(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	if !info.IsDir() {
		return humanize.Bytes(uint64(info.Size()))
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return "unreadable"
	}
	return CountItems(len(entries))
}

// CountItems formats n as "1 item" / "1,024 items".
func CountItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return humanize.Comma(int64(n)) + " items"
}

// ShortenPath replaces the home directory prefix with ~.
func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
