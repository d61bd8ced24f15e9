package usecase

import (
	"io"

	"github.com/3-lines-studio/landgen/internal/adapters/fs"
)

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string, args ...any)

	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
	ErrWriter() io.Writer
}

type FileSystem = fs.FileSystem
