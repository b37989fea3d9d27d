// Command jex inspects, queries and packs JSON documents.
//
// Documents are read from a file argument or from stdin when the argument is
// "-" or omitted. Subcommands:
//
//	get      extract values along a path built from structured leg arguments
//	unquote  decode a JSON string value to plain text
//	pack     encode a JSON document into a compressed blob file
//	unpack   decode a blob file back to JSON text
//	path     select values with an RFC 9535 JSONPath expression
//
// Path legs for the get subcommand are one token each: key=NAME, key=*,
// idx=N, idx=* or **. There is no combined path syntax; each argument maps
// to exactly one leg.
package main

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/theory/jsonpath"
	"github.com/tidwall/pretty"

	"github.com/meloir/jex"
	"github.com/meloir/jex/blob"
	"github.com/meloir/jex/format"
	"github.com/meloir/jex/json"
	"github.com/meloir/jex/pathexpr"
)

var cli struct {
	Get     getCmd     `cmd:"" help:"Extract values along a path of structured legs."`
	Unquote unquoteCmd `cmd:"" help:"Decode a JSON string value to plain text."`
	Pack    packCmd    `cmd:"" help:"Encode a JSON document into a blob file."`
	Unpack  unpackCmd  `cmd:"" help:"Decode a blob file back to JSON text."`
	Path    pathCmd    `cmd:"" help:"Select values with a JSONPath expression."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("jex"),
		kong.Description("Inspect, query and pack JSON documents."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

type getCmd struct {
	Pretty bool     `help:"Indent the JSON output." short:"p"`
	File   string   `arg:"" help:"Input JSON document, or - for stdin."`
	Legs   []string `arg:"" optional:"" name:"leg" help:"Path legs: key=NAME, key=*, idx=N, idx=* or **."`
}

func (c *getCmd) Run() error {
	doc, err := readDocument(c.File)
	if err != nil {
		return err
	}

	legs := make([]pathexpr.Leg, 0, len(c.Legs))
	for _, tok := range c.Legs {
		leg, err := parseLeg(tok)
		if err != nil {
			return err
		}
		legs = append(legs, leg)
	}
	expr, err := pathexpr.New(legs...)
	if err != nil {
		return err
	}

	result, ok := jex.Extract(doc, expr)
	if !ok {
		return fmt.Errorf("no values matched")
	}
	return printJSON(result, c.Pretty)
}

// parseLeg maps one command-line token to one path leg.
func parseLeg(tok string) (pathexpr.Leg, error) {
	switch {
	case tok == "**":
		return pathexpr.DoubleWildcard(), nil
	case tok == "key=*":
		return pathexpr.AnyKey(), nil
	case strings.HasPrefix(tok, "key="):
		return pathexpr.Key(strings.TrimPrefix(tok, "key=")), nil
	case tok == "idx=*":
		return pathexpr.AnyIndex(), nil
	case strings.HasPrefix(tok, "idx="):
		n, err := strconv.Atoi(strings.TrimPrefix(tok, "idx="))
		if err != nil || n < 0 {
			return pathexpr.Leg{}, fmt.Errorf("invalid index leg %q", tok)
		}
		return pathexpr.Index(n), nil
	default:
		return pathexpr.Leg{}, fmt.Errorf("unknown leg %q (want key=NAME, key=*, idx=N, idx=* or **)", tok)
	}
}

type unquoteCmd struct {
	File string `arg:"" help:"Input JSON document, or - for stdin."`
}

func (c *unquoteCmd) Run() error {
	doc, err := readDocument(c.File)
	if err != nil {
		return err
	}
	text, err := jex.Unquote(doc)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

type packCmd struct {
	Compression string `help:"Payload compression: zstd, s2, lz4 or none." default:"zstd"`
	BigEndian   bool   `help:"Write payload multi-byte fields big-endian."`
	In          string `arg:"" help:"Input JSON document, or - for stdin."`
	Out         string `arg:"" help:"Output blob file, or - for stdout."`
}

func (c *packCmd) Run() error {
	doc, err := readDocument(c.In)
	if err != nil {
		return err
	}

	compression, ok := format.ParseCompressionType(c.Compression)
	if !ok {
		return fmt.Errorf("unknown compression %q (want zstd, s2, lz4 or none)", c.Compression)
	}
	opts := []blob.Option{blob.WithCompression(compression)}
	if c.BigEndian {
		opts = append(opts, blob.WithBigEndian())
	}

	data, err := jex.Pack(doc, opts...)
	if err != nil {
		return err
	}
	return writeOutput(c.Out, data)
}

type unpackCmd struct {
	Pretty bool   `help:"Indent the JSON output." short:"p"`
	In     string `arg:"" help:"Input blob file, or - for stdin."`
}

func (c *unpackCmd) Run() error {
	data, err := readInput(c.In)
	if err != nil {
		return err
	}
	doc, err := jex.Unpack(data)
	if err != nil {
		return err
	}
	return printJSON(doc, c.Pretty)
}

type pathCmd struct {
	All  bool   `help:"Print every match as a JSON array instead of the first match."`
	File string `arg:"" help:"Input JSON document, or - for stdin."`
	Expr string `arg:"" name:"jsonpath" help:"RFC 9535 JSONPath expression."`
}

// Run bridges to the standard JSONPath dialect. Selection happens on a plain
// encoding/json tree, not on the engine's Value form.
func (c *pathCmd) Run() error {
	data, err := readInput(c.File)
	if err != nil {
		return err
	}

	path, err := jsonpath.Parse(c.Expr)
	if err != nil {
		return fmt.Errorf("invalid JSONPath %q: %w", c.Expr, err)
	}
	var tree any
	if err := stdjson.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}

	matches := path.Select(tree)
	var out any
	if c.All {
		out = matches
	} else {
		if len(matches) == 0 {
			return fmt.Errorf("no values matched %s", c.Expr)
		}
		out = matches[0]
	}

	encoded, err := stdjson.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", encoded)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readDocument(path string) (json.Value, error) {
	data, err := readInput(path)
	if err != nil {
		return json.Null(), err
	}
	return jex.ParseJSONBytes(data)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printJSON(v json.Value, indent bool) error {
	out := []byte(v.JSONString())
	if indent {
		out = pretty.Pretty(out)
	} else {
		out = append(out, '\n')
	}
	_, err := os.Stdout.Write(out)
	return err
}
