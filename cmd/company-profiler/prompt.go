package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	companyPrompt = "Enter Company Name: "
	rolePrompt    = "Enter Job Role: "
)

// readInputs prompts for whichever of company and role is still blank and
// reads one line per prompt from in.
func readInputs(in io.Reader, out io.Writer, company, role string) (string, string, error) {
	r := bufio.NewReader(in)

	company, err := promptIfBlank(r, out, companyPrompt, company)
	if err != nil {
		return "", "", fmt.Errorf("reading company name: %w", err)
	}
	role, err = promptIfBlank(r, out, rolePrompt, role)
	if err != nil {
		return "", "", fmt.Errorf("reading job role: %w", err)
	}
	return company, role, nil
}

func promptIfBlank(r *bufio.Reader, out io.Writer, prompt, value string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	fmt.Fprint(out, prompt)

	line, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// A final line without a newline still counts.
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	return strings.TrimSpace(line), nil
}
