// Command yml2byml converts YAML text into a BYML document.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nintendotools/byml"
	"github.com/nintendotools/byml/compress"
	"github.com/nintendotools/byml/format"
	"github.com/nintendotools/byml/yamlbridge"
	"gopkg.in/yaml.v3"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	version := flag.Int("V", 2, "BYML format version (1, 2, or 3)")
	bigEndian := flag.Bool("b", false, "write big-endian output")
	compressionName := flag.String("c", "none", "output compression: none, yaz0, zstd, s2, lz4")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [IN] [OUT] [-V {1,2,3}] [-b] [-c {none,yaz0,zstd,s2,lz4}]\n", os.Args[0])
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

	compressionType, err := parseCompressionFlag(*compressionName)
	if err != nil {
		logger.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(in, out, uint16(*version), *bigEndian, compressionType); err != nil {
		logger.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCompressionFlag(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return format.CompressionNone, nil
	case "yaz0":
		return format.CompressionYaz0, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func run(in, out string, version uint16, bigEndian bool, compressionType format.CompressionType) error {
	data, err := readInput(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml %s: %w", in, err)
	}

	root, err := yamlbridge.FromYAML(&doc)
	if err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}

	opts := []byml.Option{byml.WithVersion(version)}
	if bigEndian {
		opts = append(opts, byml.WithBigEndian())
	}

	encoded, err := byml.Encode(root, opts...)
	if err != nil {
		return fmt.Errorf("encode %s: %w", in, err)
	}

	// the legacy ".s"-prefixed extension convention always applies Yaz0,
	// regardless of the -c flag
	if strings.HasPrefix(fileExt(out), ".s") {
		encoded, err = compress.NewYaz0Codec().Compress(encoded)
	} else if compressionType != format.CompressionNone {
		var codec compress.Codec
		codec, err = compress.CreateCodec(compressionType, "output")
		if err == nil {
			encoded, err = codec.Compress(encoded)
		}
	}
	if err != nil {
		return fmt.Errorf("compress output: %w", err)
	}

	return writeOutput(out, encoded)
}

func fileExt(path string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return ""
	}

	return path[idx:]
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
