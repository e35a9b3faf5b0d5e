package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/output"
)

// bodyFlags holds the ways a template body can be supplied on the command
// line.
type bodyFlags struct {
	body     string
	bodyFile string
}

// register adds --body and --body-file to cmd.
func (f *bodyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.body, "body", "", "Body pattern")
	cmd.Flags().StringVar(&f.bodyFile, "body-file", "", "Read the body pattern from a file ('-' for stdin)")
	cmd.MarkFlagsMutuallyExclusive("body", "body-file")
}

// resolve returns the supplied body, or nil when neither flag was given.
// File contents are used byte for byte.
func (f *bodyFlags) resolve(cmd *cobra.Command) (*string, error) {
	if cmd.Flags().Changed("body") {
		body := f.body
		return &body, nil
	}
	if !cmd.Flags().Changed("body-file") {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if f.bodyFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(f.bodyFile)
	}
	if err != nil {
		return nil, output.NewUserError("cannot read body file " + f.bodyFile + ": " + err.Error())
	}
	body := string(data)
	return &body, nil
}
