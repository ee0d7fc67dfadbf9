package errors

// Convenience constructors for the pipeline's fatal error kinds.
//
// Parse and validation messages name the offending document directly: the
// rendered message is the only thing the user sees, and it must identify
// which document and which rule failed.

// Config errors

func ConfigNotFound(path string) *BuildError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found: "+path).
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *BuildError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file "+path+" invalid").
		WithContext("path", path)
}

// Recipe document errors

func ParseFailed(file string, cause error) *BuildError {
	return Wrap(cause, CategoryParse, SeverityFatal, "unable to parse "+file).
		WithContext("file", file)
}

func OpenFailed(file string, cause error) *BuildError {
	return Wrap(cause, CategoryParse, SeverityFatal, "unable to open "+file).
		WithContext("file", file)
}

func MissingField(file, field string) *BuildError {
	return New(CategoryValidation, SeverityFatal, "required field "+field+" not in recipe "+file).
		WithContext("file", file).
		WithContext("field", field)
}

func UnknownMacronutrient(file, macro string) *BuildError {
	return New(CategoryValidation, SeverityFatal, macro+" is an unknown macronutrient in recipe "+file).
		WithContext("file", file).
		WithContext("macronutrient", macro)
}

func InvalidIngredients(file, reason string) *BuildError {
	return New(CategoryValidation, SeverityFatal, "ingredients "+reason+" in recipe "+file).
		WithContext("file", file)
}

func DuplicateIdentity(file, other, identity string) *BuildError {
	return New(CategoryValidation, SeverityFatal,
		"duplicate recipe identity "+identity+" in "+file+" (conflicts with "+other+")").
		WithContext("file", file).
		WithContext("conflicts_with", other)
}

func UnknownAuthor(file, author string) *BuildError {
	return New(CategoryValidation, SeverityFatal, "unknown author "+author+" in recipe "+file).
		WithContext("file", file).
		WithContext("author", author)
}

// Output errors

func RenderFailed(templateID string, cause error) *BuildError {
	return Wrap(cause, CategoryRender, SeverityFatal, "template "+templateID+" rendering failed").
		WithContext("template", templateID)
}

func WriteFailed(path string, cause error) *BuildError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "artifact write failed: "+path).
		WithContext("path", path)
}

// Store errors

func StoreFailed(operation string, cause error) *BuildError {
	return Wrap(cause, CategoryStore, SeverityFatal, "store operation failed").
		WithContext("operation", operation)
}

// Internal errors

func InternalError(message string, cause error) *BuildError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
