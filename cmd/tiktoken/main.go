// Command tiktoken exposes the tiktoken package's encode/decode/count/
// split operations as a small JSON-over-stdio CLI, following the same
// flag.NewFlagSet-per-subcommand idiom as the teacher's own CLI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	tiktoken "github.com/arcbpe/tiktoken"
)

func die(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("tiktoken [encode|decode|count|split] -encoding <name>")
		return
	}

	switch os.Args[1] {
	case "encode":
		fs := flag.NewFlagSet("encode", flag.ExitOnError)
		encName := fs.String("encoding", string(tiktoken.Cl100kBase), "encoding name")
		allowAll := fs.Bool("allow-special", false, "recognize every special token")
		_ = fs.Parse(os.Args[2:])
		enc := mustLoad(*encName)
		text := mustReadStdin()
		var tokens []uint32
		if *allowAll {
			tokens = enc.Encode(text, enc.SpecialTokens())
		} else {
			tokens = enc.EncodeOrdinary(text)
		}
		mustEncodeJSON(tokens)

	case "decode":
		fs := flag.NewFlagSet("decode", flag.ExitOnError)
		encName := fs.String("encoding", string(tiktoken.Cl100kBase), "encoding name")
		_ = fs.Parse(os.Args[2:])
		enc := mustLoad(*encName)
		var tokens []uint32
		if err := json.NewDecoder(os.Stdin).Decode(&tokens); err != nil {
			die(err)
		}
		s, err := enc.DecodeUTF8(tokens)
		if err != nil {
			die(err)
		}
		fmt.Println(s)

	case "count":
		fs := flag.NewFlagSet("count", flag.ExitOnError)
		encName := fs.String("encoding", string(tiktoken.Cl100kBase), "encoding name")
		_ = fs.Parse(os.Args[2:])
		enc := mustLoad(*encName)
		text := mustReadStdin()
		fmt.Println(enc.Count(text))

	case "split":
		fs := flag.NewFlagSet("split", flag.ExitOnError)
		encName := fs.String("encoding", string(tiktoken.Cl100kBase), "encoding name")
		allowAll := fs.Bool("allow-special", false, "recognize every special token")
		_ = fs.Parse(os.Args[2:])
		enc := mustLoad(*encName)
		text := mustReadStdin()
		var allowed map[string]struct{}
		if *allowAll {
			allowed = enc.SpecialTokens()
		}
		pieces, err := enc.SplitByToken(text, allowed)
		if err != nil {
			die(err)
		}
		mustEncodeJSON(pieces)

	default:
		fmt.Fprintln(os.Stderr, "unknown subcommand:", os.Args[1])
		os.Exit(2)
	}
}

func mustLoad(name string) *tiktoken.Encoding {
	enc, err := tiktoken.LoadEncoding(tiktoken.EncodingName(name))
	if err != nil {
		die(err)
	}
	return enc
}

func mustReadStdin() string {
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		die(err)
	}
	return string(b)
}

func mustEncodeJSON(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		die(err)
	}
}
