package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjl525/presetpull/pkg/scan"
)

// scanCommand creates the scan command for detecting unresolved merge
// conflicts, a post-merge hygiene check for the plugin's own repository.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		root string
		exts []string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a tree for unresolved merge-conflict markers",
		Long: `Scan walks a directory tree looking for leftover Git conflict markers
(<<<<<<<, =======, >>>>>>>). Run it after a merge or rebase, or wire it
into CI; it exits non-zero when markers are found.

Examples:
  presetpull scan
  presetpull scan --root ./src --ext .cpp --ext .h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				var err error
				root, err = os.Getwd()
				if err != nil {
					return err
				}
			}

			s, err := scan.New(root, exts, c.Logger)
			if err != nil {
				return err
			}
			matches, err := s.Run()
			if err != nil {
				return err
			}

			if len(matches) == 0 {
				printSuccess("No merge conflict markers detected")
				return nil
			}

			printWarning("Detected potential merge conflicts:")
			for _, m := range matches {
				printDetail("%s:%d: %s", m.Path, m.Line, m.Text)
			}
			return fmt.Errorf("found %s; resolve the conflicts above before continuing",
				plural(len(matches), "conflict marker"))
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "tree to scan (defaults to the working directory)")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "whitelist of file extensions to scan (e.g. .cpp)")

	return cmd
}
