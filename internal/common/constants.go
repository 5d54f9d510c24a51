package common

const (
	// Compression constants
	DefaultCompressionLevel = "recommended"
	CompressedFileSuffix    = "_compressed"

	// File operation constants
	DefaultFilePermissions = 0755
)
