package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/repr"
	"github.com/beevik/etree"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"

	htmltok "github.com/dpotapov/go-htmltok"
)

var (
	dumpFormat     string
	dumpFilter     string
	dumpLocations  bool
	dumpErrorsOnly bool
	dumpTrace      bool

	dumpCmd = &cobra.Command{
		Use:   "dump [file]",
		Short: "Tokenize a file (or stdin) and print the token stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) > 1 {
				_ = cmd.Help()
				return errors.New("at most one input file may be given")
			}
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			src, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var prog *vm.Program
			if dumpFilter != "" {
				prog, err = expr.Compile(dumpFilter, expr.Env(tokenRecord{}), expr.AsBool())
				if err != nil {
					return fmt.Errorf("compile filter: %w", err)
				}
			}

			rec := &recorder{locInfo: dumpLocations}
			var handler htmltok.TokenHandler = rec
			if dumpTrace {
				// TraceHandler logs at debug level; --trace enables it.
				verbose = true
				handler = &htmltok.TraceHandler{Next: rec, Logger: logger()}
			}
			tok := htmltok.New(htmltok.Options{SourceCodeLocationInfo: dumpLocations}, handler)
			tok.Write(string(src), true, nil)

			out := rec.records
			if dumpErrorsOnly {
				filtered := out[:0]
				for _, r := range out {
					if r.Type == "ParseError" {
						filtered = append(filtered, r)
					}
				}
				out = filtered
			}
			if prog != nil {
				filtered := out[:0]
				for _, r := range out {
					keep, err := expr.Run(prog, r)
					if err != nil {
						return fmt.Errorf("run filter: %w", err)
					}
					if keep.(bool) {
						filtered = append(filtered, r)
					}
				}
				out = filtered
			}
			return writeRecords(os.Stdout, out)
		},
	}
)

func writeRecords(w io.Writer, records []tokenRecord) error {
	switch dumpFormat {
	case "text":
		for _, r := range records {
			writeTextRecord(w, r)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "repr":
		for _, r := range records {
			fmt.Fprintln(w, repr.String(r, repr.Indent("  ")))
		}
		return nil
	case "xml":
		return writeXMLRecords(w, records)
	default:
		return fmt.Errorf("unknown format %q", dumpFormat)
	}
}

func writeTextRecord(w io.Writer, r tokenRecord) {
	switch r.Type {
	case "StartTag":
		fmt.Fprintf(w, "<%s", r.Name)
		for _, a := range r.Attrs {
			fmt.Fprintf(w, " %s=%q", a.Name, a.Value)
		}
		if r.SelfClosing {
			fmt.Fprint(w, " /")
		}
		fmt.Fprintln(w, ">")
	case "EndTag":
		fmt.Fprintf(w, "</%s>\n", r.Name)
	case "Comment":
		fmt.Fprintf(w, "comment %q\n", r.Data)
	case "Doctype":
		fmt.Fprintf(w, "doctype name=%q public=%q system=%q quirks=%v\n",
			r.Name, r.PublicID, r.SystemID, r.ForceQuirks)
	case "Character":
		fmt.Fprintf(w, "%s %q\n", r.Kind, r.Data)
	case "ParseError":
		fmt.Fprintf(w, "error %s at %d:%d\n", r.Code, r.Line, r.Col)
	default:
		fmt.Fprintln(w, r.Type)
	}
}

// writeXMLRecords renders the stream as an XML document, one element per
// token, attributes inlined.
func writeXMLRecords(w io.Writer, records []tokenRecord) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("tokens")
	for _, r := range records {
		e := root.CreateElement(r.Type)
		if r.Name != "" {
			e.CreateAttr("name", r.Name)
		}
		if r.Kind != "" {
			e.CreateAttr("kind", r.Kind)
		}
		if r.SelfClosing {
			e.CreateAttr("selfClosing", "true")
		}
		if r.ForceQuirks {
			e.CreateAttr("forceQuirks", "true")
		}
		if r.Code != "" {
			e.CreateAttr("code", r.Code)
			e.CreateAttr("line", strconv.Itoa(r.Line))
			e.CreateAttr("col", strconv.Itoa(r.Col))
		}
		if r.Data != "" {
			e.SetText(r.Data)
		}
		for _, a := range r.Attrs {
			ae := e.CreateElement("attr")
			ae.CreateAttr("name", a.Name)
			ae.CreateAttr("value", a.Value)
		}
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format: text, json, repr or xml")
	dumpCmd.Flags().StringVar(&dumpFilter, "filter", "", `expression selecting records, e.g. 'Type == "StartTag" && Name == "a"'`)
	dumpCmd.Flags().BoolVar(&dumpLocations, "locations", false, "track source locations (printed in json and repr output; text and xml show positions of parse errors only)")
	dumpCmd.Flags().BoolVar(&dumpErrorsOnly, "errors-only", false, "print only parse errors")
	dumpCmd.Flags().BoolVar(&dumpTrace, "trace", false, "log every token through slog while dumping")
	rootCmd.AddCommand(dumpCmd)
}
