package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// generatedMarker starts every file the generator writes.
var generatedMarker = []byte("// Code generated by binding-generator. DO NOT EDIT.")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// RemoveStale deletes generated files in outputDir that are not part of
// files, such as unions.go after the last union left the schema. Files
// without the generated marker are never touched. It returns the removed
// file names.
func RemoveStale(files []GeneratedFile, outputDir string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	keep := make([]string, len(files))
	for i, f := range files {
		keep[i] = f.Filename
	}

	var removed []string

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || slices.Contains(keep, name) {
			continue
		}

		path := filepath.Join(outputDir, name)

		content, err := os.ReadFile(path)
		if err != nil {
			return removed, fmt.Errorf("reading %s: %w", name, err)
		}

		if !bytes.HasPrefix(content, generatedMarker) {
			continue
		}

		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}

		removed = append(removed, name)
	}

	return removed, nil
}
