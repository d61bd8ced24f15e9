package commands

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landgen/internal/adapters/fs"
	"github.com/3-lines-studio/landgen/internal/usecase"
)

func newDoctorCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check components, locales and the template without writing pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, _, err := e.loadSite(cmd)
			if err != nil {
				return err
			}

			out := usecase.NewDoctorService(fs.NewOSFileSystem(), e.output()).Check(site)
			if !out.Success {
				return ErrFailed
			}
			return nil
		},
	}
}
