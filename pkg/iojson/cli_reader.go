package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a T from the file named by its --file flag, or from
// piped stdin when the flag is unset.
type FileReader[T any] struct {
	path  string
	stdin io.Reader
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (\"-\" reads stdin)",
		Destination: &fr.path,
	}
}

// IsSet reports whether --file was given.
func (fr *FileReader[T]) IsSet() bool {
	return fr.path != ""
}

func (fr *FileReader[T]) Read() (T, error) {
	var input T
	var reader io.Reader

	switch fr.path {
	case "":
		return input, fmt.Errorf("no input file given")
	case "-":
		reader = fr.stdin
		if reader == nil {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return input, fmt.Errorf("stdin is a terminal; pipe JSON input or pass a file")
			}
			reader = os.Stdin
		}
	default:
		f, err := os.Open(fr.path)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
