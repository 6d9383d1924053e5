package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck/pkg/api"
	"github.com/dmitrymomot/formcheck/pkg/signup"
)

// formFile is the YAML document read by the form command.
type formFile struct {
	signup.Form `yaml:",inline"`
	Options     signup.Options `yaml:"options"`
}

func newFormCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "form <file.yaml|->",
		Short: "Validate a signup form read from a YAML file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readFormFile(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			errs := doc.ValidateWith(doc.Options)
			out := cmd.OutOrStdout()

			if asJSON {
				resp := api.FormResponse{Valid: errs.IsEmpty(), Errors: errs.First()}
				if err := json.NewEncoder(out).Encode(resp); err != nil {
					return err
				}
			} else {
				for _, field := range signup.Fields {
					msg := "ok"
					if errs.Has(field) {
						msg = errs.Get(field)
					}
					fmt.Fprintf(out, "%s: %s\n", field, msg)
				}
			}

			if !errs.IsEmpty() {
				return errInvalidInput
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func readFormFile(stdin io.Reader, path string) (formFile, error) {
	var doc formFile

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return doc, fmt.Errorf("reading form: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return doc, fmt.Errorf("parsing form: %w", err)
	}
	return doc, nil
}
