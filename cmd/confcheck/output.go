package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrOutputExists is returned when -o names an existing file and overwriting
// was neither forced nor confirmed.
var ErrOutputExists = errors.New("output file already exists")

const outputFileMode = 0o644

// outputFlags are shared by the commands that produce a file.
type outputFlags struct {
	path  string
	force bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&o.force, "force", false, "Overwrite the output file without asking")
}

// write sends data to stdout, or to the output file after checking that an
// existing file may be replaced.
func (o *outputFlags) write(cmd *cobra.Command, data []byte) error {
	if o.path == "" {
		_, err := cmd.OutOrStdout().Write(data)

		return err
	}

	if _, err := os.Stat(o.path); err == nil && !o.force {
		ok, err := confirmOverwrite(o.path)
		if err != nil {
			return err
		}

		if !ok {
			return errors.Wrapf(ErrOutputExists, "%s (use --force to overwrite)", o.path)
		}
	}

	if err := os.WriteFile(o.path, data, outputFileMode); err != nil {
		return errors.Wrapf(err, "writing %s", o.path)
	}

	log.Info("wrote output", "path", o.path, "bytes", len(data))

	return nil
}

// confirmOverwrite asks before replacing path. Without a terminal on stdin
// the answer is no.
func confirmOverwrite(path string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	var overwrite bool

	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
		Affirmative("Overwrite").
		Negative("Keep").
		Value(&overwrite).
		Run()
	if err != nil {
		return false, errors.Wrap(err, "asking for confirmation")
	}

	return overwrite, nil
}

// isTerminal returns true if w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
