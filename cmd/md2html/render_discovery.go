package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ErrInvalidExtension is returned for an explicit input that is not Markdown.
var ErrInvalidExtension = errors.New("file must have a .md, .markdown, .mdown or .mkd extension")

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files named by inputs, in argument
// order. A file reached through two inputs is rendered once.
func discoverFiles(inputs []string, outputDir, ext string) ([]FileToRender, error) {
	var files []FileToRender
	seen := make(map[string]bool)

	for _, input := range inputs {
		found, err := discoverInput(input, outputDir, ext)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			key := filepath.Clean(f.InputPath)
			if seen[key] {
				continue
			}
			seen[key] = true
			files = append(files, f)
		}
	}

	return files, nil
}

// discoverInput expands a single file or directory argument.
func discoverInput(inputPath, outputDir, ext string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "", ext)
		if err != nil {
			return nil, err
		}
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath, ext)
		if err != nil {
			return err
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for a markdown file.
// Files found under baseInputDir keep their relative layout in outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) (string, error) {
	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), ext)
	if err != nil {
		return "", err
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name), nil
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(outputDir, name), nil
}
