package commands

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landgen/internal/adapters/fs"
	"github.com/3-lines-studio/landgen/internal/usecase"
)

func newGenerateCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write one page per configured language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, e)
		},
	}
}

func runGenerate(cmd *cobra.Command, e *env) error {
	site, log, err := e.loadSite(cmd)
	if err != nil {
		return err
	}

	svc := usecase.NewGenerateService(fs.NewOSFileSystem(), e.output(), log)
	out := svc.Generate(cmd.Context(), site)
	if out.Error != nil {
		return out.Error
	}
	if !out.Success {
		return ErrFailed
	}
	return nil
}
