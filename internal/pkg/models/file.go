package models

// FileRecord is an opaque file entry returned by the backend. The backend
// does not publish a stable schema for file listings, so entries are passed
// through untouched.
type FileRecord map[string]interface{}
