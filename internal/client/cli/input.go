package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// clearToken empties an optional field while editing.
const clearToken = "-"

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetTextWithDefault is GetSimpleText with the current value shown in
// brackets. An empty answer keeps current; "-" clears it.
func GetTextWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	switch text {
	case "":
		return current, nil
	case clearToken:
		return "", nil
	}
	return text, nil
}

// Confirm asks a yes/no question. Anything but y/yes (any case) is a no,
// and so is a read error.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) bool {
	if _, err := fmt.Fprint(w, prompt+" [y/N]: "); err != nil {
		return false
	}
	text, err := readLine(reader)
	if err != nil {
		return false
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true
	}
	return false
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
