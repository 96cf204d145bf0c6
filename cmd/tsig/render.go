package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tsig/internal/docfmt"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [file.json]",
	Short: "Re-render signatures from an extracted JSON document",
	Long:  `Render reads a document produced by "tsig extract --format json" (file or stdin) and rebuilds signatures from the stored parameter descriptors`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runRender(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	docs, err := decodeDocuments(raw)
	if err != nil {
		return err
	}
	// сигнатуры пересобираем из дескрипторов, а не доверяем входному полю
	for i := range docs {
		for j := range docs[i].Entries {
			e := &docs[i].Entries[j]
			e.Signature = e.RenderSignature()
		}
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return docfmt.DocumentsJSON(os.Stdout, docs)
	case "pretty":
		opts := docfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		for _, doc := range docs {
			if err := docfmt.EntriesPretty(os.Stdout, doc.Path, doc.Entries, opts); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// decodeDocuments принимает и одиночный документ, и массив документов.
func decodeDocuments(raw []byte) ([]docfmt.Document, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var docs []docfmt.Document
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, fmt.Errorf("invalid document array: %w", err)
		}
		return docs, nil
	}
	var doc docfmt.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return []docfmt.Document{doc}, nil
}
