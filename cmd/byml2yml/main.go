// Command byml2yml converts a BYML document into YAML text.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nintendotools/byml"
	"github.com/nintendotools/byml/yamlbridge"
	"gopkg.in/yaml.v3"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [IN] [OUT]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	in, out := "-", "-"
	switch flag.NArg() {
	case 0:
	case 1:
		in = flag.Arg(0)
	case 2:
		in, out = flag.Arg(0), flag.Arg(1)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := run(in, out); err != nil {
		logger.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	data, err := readInput(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	root, err := byml.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	yml, err := yamlbridge.ToYAML(root)
	if err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}

	encoded, err := yaml.Marshal(yml)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	out = resolveOutputPath(in, out)

	return writeOutput(out, encoded)
}

// resolveOutputPath substitutes a literal "!!" in out with in's base name
// minus its extension ("dir/foo.byml" gives "foo"), leaving "-" (stdout)
// untouched.
func resolveOutputPath(in, out string) string {
	if out == "-" {
		return out
	}

	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))

	return strings.ReplaceAll(out, "!!", base)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)

		return err
	}

	return os.WriteFile(path, data, 0o644)
}
