package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// Dir is where on-disk overrides of the embedded prefabs live, relative to
// the working directory.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a spec file. A copy under Dir wins over the embedded one so
// edits are picked up without rebuilding.
func Load(name string) ([]byte, error) {
	return readOverlay(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads an input script from Dir/scripts or the embedded set.
// The .tengo extension is optional.
func LoadScript(name string) ([]byte, error) {
	return readOverlay(ScriptsFS, cleanScriptPath(name))
}

// ScriptName normalizes a script name the way Change.Name reports it.
func ScriptName(name string) string {
	return cleanScriptPath(name)
}

func readOverlay(embedded embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	s, _ = strings.CutPrefix(s, Dir+"/")
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := cleanPrefabPath(path)
	s, _ = strings.CutPrefix(s, "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "scripts/" + s
}
