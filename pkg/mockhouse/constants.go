package mockhouse

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitArchiveError    = 11 // Wheel archive unreadable or corrupt
	ExitNoMetadata      = 12 // No metadata entry found in the archive
	ExitInvalidMetadata = 13 // Metadata present but malformed or invalid
	ExitVerifyFailed    = 14 // RECORD checksum verification failed
)

const (
	// MetadataEntryName is the canonical metadata entry basename inside a
	// wheel's .dist-info directory.
	MetadataEntryName = "METADATA"

	// LegacyMetadataEntryName is the sdist-era metadata basename. Some
	// producers still ship it inside wheels; it is accepted as a fallback.
	LegacyMetadataEntryName = "PKG-INFO"

	// RecordEntryName is the basename of the checksum manifest inside a
	// wheel's .dist-info directory.
	RecordEntryName = "RECORD"

	// WheelExtension is the filename extension of wheel archives.
	WheelExtension = ".whl"

	// MaxMetadataSize caps how many bytes of a metadata entry are read.
	// Real-world METADATA files with long descriptions run to a few hundred
	// kilobytes; anything past this is treated as corrupt.
	MaxMetadataSize = 8 * 1024 * 1024
)
