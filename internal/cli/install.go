package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgerrors "github.com/cjl525/presetpull/pkg/errors"
	"github.com/cjl525/presetpull/pkg/install"
)

// installCommand creates the install command for copying an already-written
// presets file into the BakkesMod data folder.
func (c *CLI) installCommand() *cobra.Command {
	var (
		file   string
		path   string
		choose bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Copy a written presets file into the BakkesMod data folder",
		Long: `Install copies a presets file into the ExpandedPresets folder under the
BakkesMod data directory. The destination is discovered from the
BAKKESMOD_DATA, BAKKESMOD_PATH and APPDATA environment variables and
common home-directory locations; use --path to override, or --choose to
pick interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(file); err != nil {
				return pkgerrors.New(pkgerrors.ErrCodeNotFound,
					"presets file %q not found; run download first", file)
			}

			if choose {
				selected, err := chooseDestination()
				if err != nil {
					return err
				}
				if selected == "" {
					printInfo("Install cancelled")
					return nil
				}
				path = selected
			}

			dst, err := install.Install(file, path)
			if err != nil {
				return err
			}
			printSuccess("Installed presets file")
			printFile(dst)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", c.Config.Output, "presets file to install")
	cmd.Flags().StringVar(&path, "path", c.Config.Install.Path, "explicit destination directory")
	cmd.Flags().BoolVar(&choose, "choose", false, "pick the destination interactively")

	return cmd
}

// chooseDestination runs the interactive destination picker over the
// conventional data-folder candidates. Returns "" when the user quits
// without selecting.
func chooseDestination() (string, error) {
	model := NewDestListModel(install.Candidates())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(DestListModel)
	if !ok || m.Selected == "" {
		return "", nil
	}
	return m.Selected, nil
}
