// Package passgen implements the passgen CLI.
package passgen

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/passgen/tools/internal/clipboard"
	"github.com/passgen/tools/internal/pwgen"
	"github.com/passgen/tools/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootCmd returns the passgen command. Generation happens directly on the
// root command; the only verb is version.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "generate a secure random password",
		Long: `passgen generates a random password from lowercase letters plus any
combination of uppercase letters, digits and special characters, using the
operating system's cryptographically secure entropy source.

Examples:
  # 12 characters, all character classes (the default)
  % passgen

  # 20 characters, letters and digits only
  % passgen --length 20 --no-special

  # generate and copy to the clipboard
  % passgen -c
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionVal, err := cmd.Flags().GetBool("version")
			if err != nil {
				return fmt.Errorf("BUG: version flag declared as non-bool")
			}
			if versionVal {
				fmt.Fprintln(cmd.OutOrStdout(), version.Read())
				return nil
			}
			return rootImpl.run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	rootCmd.Flags().Bool("version", false, "print passgen version")
	rootImpl.registerPflags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// Execute runs the passgen command and is the error boundary: any error
// reaches the user as a single Error: line, never as a stack trace.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Fatalf("Error: %v", err)
	}
}

type rootImplConfig struct {
	length      int
	noUppercase bool
	noNumbers   bool
	noSpecial   bool
	copy        bool

	// copier is replaced in tests; nil means the system clipboard.
	copier clipboard.Copier
}

var rootImpl rootImplConfig

// registerPflags binds the generation flags, resetting them to their
// defaults each time a new root command is constructed.
func (r *rootImplConfig) registerPflags(fs *pflag.FlagSet) {
	fs.IntVarP(&r.length, "length", "l", 12, "length of the password")
	fs.BoolVar(&r.noUppercase, "no-uppercase", false, "exclude uppercase letters from the password")
	fs.BoolVar(&r.noNumbers, "no-numbers", false, "exclude numbers from the password")
	fs.BoolVar(&r.noSpecial, "no-special", false, "exclude special characters from the password")
	fs.BoolVarP(&r.copy, "copy", "c", false, "copy the generated password to the clipboard")
}

func (r *rootImplConfig) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	gen := pwgen.New(pwgen.Options{
		Uppercase: !r.noUppercase,
		Numbers:   !r.noNumbers,
		Special:   !r.noSpecial,
	})
	password, err := gen.Generate(r.length)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nGenerated password:\n\n%s\n\n", password)

	if r.copy {
		copier := r.copier
		if copier == nil {
			copier = clipboard.System()
		}
		if err := copier.Copy(password); err != nil {
			// The password was already displayed, so a missing clipboard
			// is reported but does not fail the program.
			fmt.Fprintf(stderr, "Error: failed to copy to clipboard: %v\n", err)
			return nil
		}
		fmt.Fprintln(stdout, "Password copied to clipboard.")
	}

	return nil
}
