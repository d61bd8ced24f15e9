package core

import "testing"

func TestProcessFilename(t *testing.T) {
	tests := []struct {
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{filename: "landgen.yaml.tmpl", wantFilename: "landgen.yaml", wantIsTmpl: true},
		{filename: "components/hero.html", wantFilename: "components/hero.html", wantIsTmpl: false},
		{filename: "locale/en.json.tmpl", wantFilename: "locale/en.json", wantIsTmpl: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, isTmpl := ProcessFilename(tt.filename)
			if got != tt.wantFilename || isTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) = (%q, %v), want (%q, %v)", tt.filename, got, isTmpl, tt.wantFilename, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := ScaffoldData{SiteName: "worldcup"}

	got := string(ProcessContent([]byte(`"title": "{{.SiteName}} | {title}"`), true, data))
	if got != `"title": "worldcup | {title}"` {
		t.Errorf("ProcessContent() = %q", got)
	}

	raw := []byte("{{.SiteName}}")
	if got := string(ProcessContent(raw, false, data)); got != "{{.SiteName}}" {
		t.Errorf("non-template content changed: %q", got)
	}
}

func TestDeriveSiteName(t *testing.T) {
	tests := map[string]string{
		"/tmp/worldcup": "worldcup",
		".":             "landing",
		"/":             "landing",
		"":              "landing",
	}
	for in, want := range tests {
		if got := DeriveSiteName(in); got != want {
			t.Errorf("DeriveSiteName(%q) = %q, want %q", in, got, want)
		}
	}
}
