package passgen_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/passgen/tools/internal/pwgen"
	"github.com/passgen/tools/passgen"
)

func TestExecute(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := passgen.Context{
		Stdout: &stdout,
		Stderr: &stderr,
		Args:   []string{"--length", "16", "--no-special"},
	}
	if err := c.Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(stdout.String(), "\n")
	if len(lines) < 4 || lines[1] != "Generated password:" {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
	password := lines[3]
	if got, want := len(password), 16; got != want {
		t.Errorf("password length: got %d, want %d", got, want)
	}
	alphabet := pwgen.New(pwgen.Options{Uppercase: true, Numbers: true}).Alphabet()
	for _, r := range password {
		if !strings.ContainsRune(alphabet, r) {
			t.Errorf("password contains %q despite --no-special", string(r))
		}
	}
}

func TestExecuteInvalidLength(t *testing.T) {
	var stdout bytes.Buffer
	c := passgen.Context{
		Stdout: &stdout,
		Args:   []string{"-l", "0"},
	}
	err := c.Execute(context.Background())
	if !errors.Is(err, pwgen.ErrInvalidLength) {
		t.Errorf("got error %v, want ErrInvalidLength", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected output on error: %q", stdout.String())
	}
}
