package core

import (
	"path/filepath"
	"strings"
)

// ScaffoldData is substituted into .tmpl files of the starter site.
type ScaffoldData struct {
	SiteName string
}

func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data ScaffoldData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.SiteName}}", data.SiteName)

	return []byte(result)
}

func DeriveSiteName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "landing"
	}
	return base
}
