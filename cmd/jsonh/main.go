// Command jsonh converts JSONH documents to standard JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	jsonh "github.com/jsonh-org/JsonhGo"
	"github.com/jsonh-org/JsonhGo/ast"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		version     string
		maxDepth    int
		incomplete  bool
		requireOne  bool
		indent      string
		parseAllDoc bool
	)

	cmd := &cobra.Command{
		Use:   "jsonh [file]",
		Short: "Convert a JSONH document to standard JSON",
		Long: `jsonh reads a JSONH document (from a file argument, or stdin if none is
given) and writes the equivalent standard JSON to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args)
			if err != nil {
				return err
			}

			v, err := jsonh.ParseVersionName(version)
			if err != nil {
				return err
			}
			opts := jsonh.ReaderOptions{
				Version:            v,
				MaxDepth:           maxDepth,
				IncompleteInputs:   incomplete,
				ParseSingleElement: requireOne,
			}

			out := cmd.OutOrStdout()
			if parseAllDoc {
				vs, err := ast.ParseAll(src, opts)
				if err != nil {
					return err
				}
				for _, val := range vs {
					if err := writeJSON(out, val, indent); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			val, err := ast.ParseElement(src, opts)
			if err != nil {
				return err
			}
			if err := writeJSON(out, val, indent); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&version, "version", "latest", `grammar version to accept: "latest", "v1", or "v2"`)
	flags.IntVar(&maxDepth, "max-depth", 0, "maximum container nesting depth (0 uses the default of 64)")
	flags.BoolVar(&incomplete, "incomplete-inputs", false, "synthesize missing closing braces/brackets at end of input")
	flags.BoolVar(&requireOne, "require-single-element", false, "fail if trailing content follows the root element")
	flags.StringVar(&indent, "indent", "  ", "indentation string for the JSON output, empty for compact")
	flags.BoolVar(&parseAllDoc, "all", false, "convert every top-level sibling element, writing each JSON document followed by a newline")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// writeJSON renders v as standard JSON, preserving JSONH's
// insertion-ordered object properties (which encoding/json's map
// support would not).
func writeJSON(w io.Writer, v ast.Value, indent string) error {
	var buf bytes.Buffer
	if err := appendJSON(&buf, v); err != nil {
		return err
	}
	if indent == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", indent); err != nil {
		return err
	}
	_, err := w.Write(pretty.Bytes())
	return err
}

func appendJSON(buf *bytes.Buffer, v ast.Value) error {
	switch val := v.(type) {
	case ast.Null:
		buf.WriteString("null")
	case ast.Bool:
		buf.WriteString(strconv.FormatBool(val.Value))
	case ast.String:
		enc, err := json.Marshal(val.Value)
		if err != nil {
			return err
		}
		buf.Write(enc)
	case ast.Number:
		enc, err := json.Marshal(val.Float64())
		if err != nil {
			return err
		}
		buf.Write(enc)
	case *ast.Array:
		buf.WriteByte('[')
		for i, e := range val.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *ast.Object:
		buf.WriteByte('{')
		for i, p := range val.Properties {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(p.Name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := appendJSON(buf, p.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("jsonh: unrecognized value type %T", v)
	}
	return nil
}
