// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor         = "flavor"
	FieldVerify         = "verify"
	FieldDetectLanguage = "detect_language"
	FieldConfigFiles    = "config_files"

	// Rendering fields.
	FieldBlocks  = "blocks"
	FieldBytes   = "bytes"
	FieldWritten = "written"
	FieldFormat  = "format"
	FieldFiles   = "files"

	// Verification fields.
	FieldBlock    = "block"
	FieldExpected = "expected"
	FieldActual   = "actual"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
	FieldGo      = "go"
)
