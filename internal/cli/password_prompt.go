package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errPasswordMismatch = errors.New("passwords do not match")

func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("stdin unavailable")
	}
	restore, err := disableEcho(stdin)
	if err != nil {
		return nil, err
	}
	defer restore()

	line, err := readPromptLine(bufio.NewReader(stdin))
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

func readPromptLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks twice on the terminal without echo.
func promptNewPassword(stdin *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "New password: ")
	first, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(out, "Repeat password: ")
	second, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errPasswordMismatch
	}
	return string(first), nil
}
