package receipt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Printer delivers a rendered receipt to its physical output.
type Printer interface {
	Print(orderID int64, content string) error
}

// FilePrinter drops receipts into a spool directory the print daemon watches.
type FilePrinter struct {
	dir string
}

func NewFilePrinter(dir string) (*FilePrinter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}
	return &FilePrinter{dir: dir}, nil
}

func (p *FilePrinter) Print(orderID int64, content string) error {
	name := fmt.Sprintf("order-%d-%s.txt", orderID, time.Now().Format("20060102-150405"))
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	return nil
}

// WriterPrinter writes receipts to any io.Writer, used for console output and
// tests.
type WriterPrinter struct {
	W io.Writer
}

func (p WriterPrinter) Print(_ int64, content string) error {
	_, err := io.WriteString(p.W, content)
	return err
}
