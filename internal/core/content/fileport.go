package content

import (
	"os"
	"path/filepath"
	"strings"
)

// FilePort persists the chosen locale to a single file. Load failures are
// treated as "nothing saved yet"; store failures are silently dropped, the
// session just falls back to detection next time.
type FilePort struct {
	Path string
}

var _ LocalePort = FilePort{}

func (p FilePort) Load() (string, bool) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(raw))
	return v, v != ""
}

func (p FilePort) Store(value string) {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(p.Path, []byte(value+"\n"), 0o644)
}
