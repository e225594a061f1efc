// Package records reads and writes the grant record batches and NPO
// profiles the core operates on. It is the only package that touches files;
// everything under internal/profile and internal/match stays pure.
package records

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheryl9/project-iceman/internal/models"
)

// ReadGrants decodes one GrantRecord per non-empty line.
func ReadGrants(r io.Reader) ([]*models.GrantRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var grants []*models.GrantRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec models.GrantRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("bad JSON on line %d: %w", lineNo, err)
		}
		grants = append(grants, &rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grants: %w", err)
	}
	return grants, nil
}

// ReadGrantsFile reads a JSONL file of grant records.
func ReadGrantsFile(path string) ([]*models.GrantRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grants file: %w", err)
	}
	defer f.Close()
	return ReadGrants(f)
}

// WriteGrants encodes one record per line.
func WriteGrants(w io.Writer, grants []*models.GrantRecord) error {
	enc := json.NewEncoder(w)
	for i, rec := range grants {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return nil
}

// WriteGrantsFile writes grant records as JSONL, replacing any existing file.
func WriteGrantsFile(path string, grants []*models.GrantRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create grants file: %w", err)
	}
	if err := WriteGrants(f, grants); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close grants file: %w", err)
	}
	return nil
}
