// Package clipboard copies text to the system clipboard on a best-effort
// basis.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// A Copier places text on a clipboard. Callers must treat failures as
// non-fatal: a missing clipboard backend must never abort the program.
type Copier interface {
	Copy(text string) error
}

type system struct{}

// System returns a Copier backed by the operating system clipboard.
func System() Copier {
	return system{}
}

func (system) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard backend available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	return nil
}
