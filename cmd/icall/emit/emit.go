package emit

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zegl/icall/compiler"
)

// Write compiles the fixture for targetTriple and writes the LLVM IR to w.
func Write(w io.Writer, targetTriple string, logger *zap.Logger) error {
	compiled, err := compiler.Compile(targetTriple)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	logger.Debug("Compiled fixture",
		zap.String("target", targetTriple),
		zap.Int("bytes", len(compiled)))

	if _, err := io.WriteString(w, compiled); err != nil {
		return fmt.Errorf("write IR: %w", err)
	}

	return nil
}

// WriteFile writes the LLVM IR to path, replacing any existing file.
func WriteFile(path, targetTriple string, logger *zap.Logger) error {
	compiled, err := compiler.Compile(targetTriple)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	// Write LLVM IR to disk
	err = os.WriteFile(path, []byte(compiled), 0666)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Debug("Wrote fixture IR", zap.String("path", path), zap.String("target", targetTriple))

	return nil
}
