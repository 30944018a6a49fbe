package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		logrus.WithFields(logrus.Fields{
			"file":  outputPath,
			"bytes": len(file.Content),
		}).Debug("generated file written")
	}

	return nil
}
