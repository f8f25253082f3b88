package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/phrazzld/kdc-shelver/internal/domain/shelving"
)

// SortCmd prints call numbers in shelving order.
type SortCmd struct {
	File    string `arg:"" optional:"" help:"File with one call number per line; '-' or empty reads stdin"`
	Explain bool   `name:"explain" short:"e" help:"Explain the order of each adjacent pair"`
}

func (c *SortCmd) Run(rt *runtime) error {
	r := rt.in
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", c.File, err)
		}
		defer f.Close()
		r = f
	}

	cns, err := readLabels(r)
	if err != nil {
		return err
	}
	rt.logger.Debug("call numbers read", "count", len(cns), "file", c.File)

	sorted := shelving.SortCallNumbers(cns)
	for i, cn := range sorted {
		if c.Explain && i > 0 {
			if _, err := fmt.Fprintf(rt.out, "     %s\n", rt.shelving.Explain(sorted[i-1], cn)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(rt.out, "%3d. %s\n", i+1, display(cn)); err != nil {
			return err
		}
	}
	return nil
}

// readLabels parses one call number per line, skipping blank lines and
// lines starting with '#'.
func readLabels(r io.Reader) ([]domain.CallNumber, error) {
	var cns []domain.CallNumber
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cns = append(cns, domain.ParseCallNumber(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read call numbers: %w", err)
	}
	return cns, nil
}
