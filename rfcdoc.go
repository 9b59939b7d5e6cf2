// Package rfcdoc provides a local, CLI-based reader for IETF RFC documents.
// It mirrors the RFC archive into a storage directory, parses the companion
// rfc-index.txt, and answers number lookups and keyword searches against the
// documents that are physically present.
//
// This package contains domain types, interfaces, and the pure index engine
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/, fs/,
// http/).
package rfcdoc

// Version is the program version reported by --version.
const Version = "1.0.0"
