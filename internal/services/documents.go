package services

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"slimpdf/internal/compression"
)

// DocumentService covers the document operations that are single calls into
// the PDF library: merge, split, extract, password-protect.
type DocumentService struct {
	conf *model.Configuration
}

// NewDocumentService creates a new document service
func NewDocumentService() *DocumentService {
	return &DocumentService{conf: model.NewDefaultConfiguration()}
}

// Merge concatenates the inputs, in order, into outputPath.
func (s *DocumentService) Merge(inputs []string, outputPath string) error {
	if len(inputs) < 2 {
		return fmt.Errorf("merge requires at least two files, got %d", len(inputs))
	}
	if err := api.MergeCreateFile(inputs, outputPath, false, s.conf); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}

// Split writes one single-page document per page of inputPath into outDir.
func (s *DocumentService) Split(inputPath, outDir string) error {
	if err := api.SplitFile(inputPath, outDir, 1, s.conf); err != nil {
		return fmt.Errorf("split failed: %w", err)
	}
	return nil
}

// ExtractRange copies the pages in r into a new document at outputPath.
func (s *DocumentService) ExtractRange(inputPath, outputPath string, r compression.PageRange) error {
	if err := api.TrimFile(inputPath, outputPath, []string{r.String()}, s.conf); err != nil {
		return fmt.Errorf("page extraction failed: %w", err)
	}
	return nil
}

// Protect writes an AES-encrypted copy of inputPath to outputPath.
func (s *DocumentService) Protect(inputPath, outputPath, userPassword, ownerPassword string) error {
	if userPassword == "" {
		return fmt.Errorf("a user password is required")
	}
	if ownerPassword == "" {
		ownerPassword = userPassword
	}

	conf := model.NewAESConfiguration(userPassword, ownerPassword, 256)
	if err := api.EncryptFile(inputPath, outputPath, conf); err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}
	return nil
}
