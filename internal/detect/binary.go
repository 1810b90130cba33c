package detect

import "strings"

// binaryExtensions is the fixed set of extensions spec.md §4.4 stage 1
// rejects outright: images, archives, office documents, media.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".tiff": true, ".psd": true,
	".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".xz": true,
	".7z": true, ".rar": true, ".jar": true, ".war": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true, ".pdf": true,
	".mp3": true, ".mp4": true, ".wav": true, ".avi": true, ".mov": true, ".mkv": true, ".flac": true,
	".so": true, ".dll": true, ".dylib": true, ".a": true, ".o": true, ".class": true,
	".exe": true, ".bin": true, ".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
}

// isKnownBinaryExtension reports whether ext (lowercased, with a
// leading dot) is in the fixed known-binary suffix set.
func isKnownBinaryExtension(ext string) bool {
	return binaryExtensions[strings.ToLower(ext)]
}

// probeContentBinary inspects up to the first 100 bytes of content
// for a zero byte, spec.md §4.4 stage 1's content-based fallback.
func probeContentBinary(content []byte) bool {
	n := len(content)
	if n > 100 {
		n = 100
	}
	for i := 0; i < n; i++ {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
