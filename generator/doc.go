// Package generator runs one structured-data build: it loads site content,
// aggregates the JSON-LD node list, renders it and writes the output file.
//
// A run is synchronous and single-threaded. Its only side effects are the
// output file, written atomically through a temporary file in the target
// directory, and the optional metrics textfile.
package generator
