package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const stdinSource = "<stdin>"

type input struct {
	source string
	text   string
}

// readInputs loads each named file, or stdin when args is empty or names "-".
func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]input, 0, len(args))
	stdinUsed := false
	for _, arg := range args {
		if arg == "-" {
			if stdinUsed {
				return nil, fmt.Errorf("stdin can only be read once")
			}
			stdinUsed = true
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			inputs = append(inputs, input{source: stdinSource, text: decodeText(data)})
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		inputs = append(inputs, input{source: arg, text: decodeText(data)})
	}
	return inputs, nil
}

// decodeText strips a UTF-8 byte order mark and replaces invalid sequences.
func decodeText(data []byte) string {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data)
	}
	logger.Warn("input is not valid UTF-8; invalid bytes replaced")
	runes := make([]rune, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		runes = append(runes, r)
		data = data[size:]
	}
	return string(runes)
}
