package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

const fromFlag = "from"

// addContactFlags registers one flag per contact field plus --from.
func addContactFlags(cmd *cobra.Command) {
	for _, f := range domain.ContactFields() {
		usage := f.Label
		if f.Required {
			usage += " (required)"
		}
		cmd.Flags().String(f.Flag, "", usage)
	}
	cmd.Flags().String(fromFlag, "", "read contact fields from a TOML file")
}

// contactFromFlags builds a record from --from and the field flags.
// Flags given on the command line override values from the file.
func contactFromFlags(cmd *cobra.Command) (domain.ContactRecord, error) {
	var record domain.ContactRecord

	from, err := cmd.Flags().GetString(fromFlag)
	if err != nil {
		return record, err
	}
	if from != "" {
		loaded, err := loadContactFile(from)
		if err != nil {
			return record, err
		}
		record = *loaded
	}

	for _, f := range domain.ContactFields() {
		if !cmd.Flags().Changed(f.Flag) {
			continue
		}
		v, err := cmd.Flags().GetString(f.Flag)
		if err != nil {
			return record, err
		}
		f.Set(&record, v)
	}
	return record, nil
}

// loadContactFile decodes a contact from a TOML file whose keys are the
// contact field keys, e.g. first_name = "Jane".
func loadContactFile(path string) (*domain.ContactRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contact file: %w", err)
	}

	var record domain.ContactRecord
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return nil, contactFileError(path, err)
	}
	return &record, nil
}

func contactFileError(path string, err error) error {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return fmt.Errorf("%w: %s: unknown contact field\n%s", domain.ErrInvalidInput, path, strict.String())
	}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Errorf("%w: %s:%d:%d: %w", domain.ErrInvalidInput, path, row, col, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, path, err)
}
