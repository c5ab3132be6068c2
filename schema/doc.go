// Package schema declares which record columns are feature columns and how
// they are encoded, either from a YAML file or by inspecting sample values.
package schema
