package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landgen/internal/adapters/fs"
	"github.com/3-lines-studio/landgen/internal/templates"
	"github.com/3-lines-studio/landgen/internal/usecase"
)

func newInitCommand(e *env) *cobra.Command {
	var starter, siteName string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve project directory: %w", err)
			}

			out := usecase.NewInitService(fs.NewOSFileSystem(), e.output()).InitProject(usecase.InitInput{
				ProjectDir: absDir,
				Starter:    starter,
				SiteName:   siteName,
			})
			return out.Error
		},
	}

	cmd.Flags().StringVar(&starter, "starter", "starter", "Starter to use ("+strings.Join(templates.ValidStarters(), ", ")+")")
	cmd.Flags().StringVar(&siteName, "name", "", "Site name used in the starter locales (default: directory name)")

	return cmd
}
