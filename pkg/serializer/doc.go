// Package serializer renders command interface descriptions to various
// formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable, round-trips through spec.Load
//   - Table: Human-readable tabular output for terminal viewing
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Write(serializer.Describe(cmd)); err != nil {
//		log.Fatal(err)
//	}
package serializer
