package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/3-lines-studio/landgen/internal/core"
	"github.com/3-lines-studio/landgen/internal/templates"
)

var ErrDirNotEmpty = errors.New("directory is not empty")

type InitInput struct {
	ProjectDir string
	Starter    string
	SiteName   string
}

type InitOutput struct {
	Success bool
	Files   []string
	Error   error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Site init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{
				Success: false,
				Error:   fmt.Errorf("failed to read directory: %w", err),
			}
		}
		if len(entries) > 0 {
			return InitOutput{
				Success: false,
				Error:   fmt.Errorf("%w: %s", ErrDirNotEmpty, input.ProjectDir),
			}
		}
	}

	starterFS, err := templates.GetStarter(input.Starter)
	if err != nil {
		return InitOutput{Success: false, Error: fmt.Errorf("starter %q: %w", input.Starter, err)}
	}

	if err := s.fs.MkdirAll(input.ProjectDir, 0755); err != nil {
		return InitOutput{Success: false, Error: fmt.Errorf("failed to create project directory: %w", err)}
	}

	siteName := input.SiteName
	if siteName == "" {
		siteName = core.DeriveSiteName(input.ProjectDir)
	}
	data := core.ScaffoldData{SiteName: siteName}

	var created []string
	err = fs.WalkDir(starterFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return s.fs.MkdirAll(filepath.Join(input.ProjectDir, path), 0755)
		}

		content, err := fs.ReadFile(starterFS, path)
		if err != nil {
			return fmt.Errorf("failed to read starter file %s: %w", path, err)
		}

		targetPath, isTemplate := core.ProcessFilename(path)
		targetPath = filepath.Join(input.ProjectDir, filepath.FromSlash(targetPath))

		if err := s.fs.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(targetPath), err)
		}
		if err := s.fs.WriteFile(targetPath, core.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			s.cli.PrintFile(targetPath + " (generated)")
		} else {
			s.cli.PrintFile(targetPath)
		}
		created = append(created, targetPath)
		return nil
	})
	if err != nil {
		return InitOutput{Success: false, Files: created, Error: err}
	}

	s.cli.PrintDone("\nCreated %d files", len(created))
	s.cli.PrintStep("Next steps:")
	s.cli.PrintStep("  cd %s", input.ProjectDir)
	s.cli.PrintStep("  landgen")

	return InitOutput{Success: true, Files: created}
}
