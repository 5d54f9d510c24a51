package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUID(t *testing.T) {
	uuid1 := GenerateUUID()
	uuid2 := GenerateUUID()

	if uuid1 == "" || uuid2 == "" {
		t.Error("Expected non-empty UUID")
	}

	if uuid1 == uuid2 {
		t.Error("Expected different UUIDs")
	}

	if _, err := uuid.Parse(uuid1); err != nil {
		t.Errorf("Generated UUID is not valid: %v", err)
	}
}

func TestNormalizePath(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sub", "..", "doc.pdf")

	normalized := NormalizePath(path)

	if normalized != filepath.Join(tempDir, "doc.pdf") {
		t.Errorf("Expected %q, got %q", filepath.Join(tempDir, "doc.pdf"), normalized)
	}

	// Normalizing twice is a no-op
	if NormalizePath(normalized) != normalized {
		t.Error("Expected normalization to be idempotent")
	}
}

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()
	srcPath := filepath.Join(tempDir, "source.txt")
	dstPath := filepath.Join(tempDir, "destination.txt")

	content := "Hello, World!"
	err := os.WriteFile(srcPath, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	err = CopyFile(srcPath, dstPath)
	if err != nil {
		t.Fatalf("Expected no error copying file, got %v", err)
	}

	dstContent, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("Failed to read destination file: %v", err)
	}

	if string(dstContent) != content {
		t.Errorf("Expected content %q, got %q", content, string(dstContent))
	}
}

func TestCopyFile_CreateDirectory(t *testing.T) {
	tempDir := t.TempDir()
	srcPath := filepath.Join(tempDir, "source.txt")
	dstPath := filepath.Join(tempDir, "subdir", "nested", "destination.txt")

	err := os.WriteFile(srcPath, []byte("data"), 0644)
	if err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	err = CopyFile(srcPath, dstPath)
	if err != nil {
		t.Fatalf("Expected no error copying file, got %v", err)
	}

	if _, err := os.Stat(dstPath); os.IsNotExist(err) {
		t.Error("Destination file was not created")
	}
}

func TestCopyFile_SourceNotFound(t *testing.T) {
	tempDir := t.TempDir()

	err := CopyFile(filepath.Join(tempDir, "nonexistent.txt"), filepath.Join(tempDir, "destination.txt"))
	if err == nil {
		t.Error("Expected error when source file doesn't exist")
	}
}
