// Package convert shells out to an external RDF serialization
// converter to produce the XML rendering of a changelog source. The
// conversion is best-effort: a failing tool is logged, never fatal.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/c360studio/changelog/graph"
)

// DefaultTool is the conversion command used when none is configured.
// rapper ships with the Raptor RDF toolkit.
const DefaultTool = "rapper"

// Converter pipes an external RDF converter's output into a file.
type Converter struct {
	// Tool is the converter binary. Empty means DefaultTool.
	Tool string

	logger *slog.Logger
}

// New returns a converter using the default tool.
func New(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{Tool: DefaultTool, logger: logger}
}

// ToXML converts the input document to RDF/XML at the output path. A
// non-zero exit from the external tool is logged as a warning and
// reported as success; the output file may then be empty or partial,
// and callers needing correctness must inspect it. Only setup failures
// (unwritable output, unknown format) return an error.
func (c *Converter) ToXML(ctx context.Context, input, output string, format graph.Format) error {
	syntax, err := inputSyntax(format)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer out.Close()

	tool := c.Tool
	if tool == "" {
		tool = DefaultTool
	}

	cmd := exec.CommandContext(ctx, tool, "-i", syntax, "-o", "rdfxml", input)
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		c.logger.Warn("RDF converter failed; output may be empty or partial",
			"tool", tool,
			"input", input,
			"output", output,
			"error", err,
			"stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// inputSyntax maps a format hint onto the converter's syntax name.
func inputSyntax(format graph.Format) (string, error) {
	switch format {
	case graph.FormatTurtle, "":
		return "turtle", nil
	case graph.FormatJSONLD:
		return "jsonld", nil
	default:
		return "", fmt.Errorf("unsupported format for conversion: %s", string(format))
	}
}
