// Package translate converts between the framework's native vocabulary and
// the wire vocabulary.
//
// Type tables map native service types, characteristic types, categories,
// units, properties and the smaller enumerations to wire enums and back.
// The characteristic table also records each type's default value format,
// which ResolveFormat falls back to when metadata does not name one.
// DecodeValue and EncodeNumber turn loosely typed raw values into the wire's
// tagged Value and Number unions; a raw value that does not fit its format
// is dropped rather than reported.
//
// Tests in this package use testify's assert and require, unlike the rest
// of the module, because they compare whole wire records field by field.
package translate
