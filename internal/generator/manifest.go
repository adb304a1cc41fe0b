package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Default placeholder tokens used when the template ships no manifest.
// They follow the common starter-kit convention of naming every
// placeholder after the kit itself.
const (
	defaultMachineToken = "starterkit"
	defaultNameToken    = "Starterkit"
)

// Manifest file names probed at the template root, in order.
var manifestNames = []string{".anvil.yml", ".anvil.yaml", ".anvil.toml"}

// Manifest describes a starter template's placeholder tokens.
type Manifest struct {
	Tokens Tokens `yaml:"tokens" toml:"tokens"`
}

// Tokens holds the placeholder strings the generator rewrites.
type Tokens struct {
	MachineName string `yaml:"machine_name" toml:"machine_name"`
	Name        string `yaml:"name" toml:"name"`
}

// loadManifest reads the template manifest from dir, if one exists. It
// returns the manifest with defaults filled in and the path of the file
// it came from, or an empty path when the template ships none.
func loadManifest(dir string) (Manifest, string, error) {
	m := Manifest{
		Tokens: Tokens{
			MachineName: defaultMachineToken,
			Name:        defaultNameToken,
		},
	}

	for _, name := range manifestNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return m, "", fmt.Errorf("reading %s: %w", path, err)
		}

		if strings.HasSuffix(name, ".toml") {
			err = toml.Unmarshal(data, &m)
		} else {
			err = yaml.Unmarshal(data, &m)
		}
		if err != nil {
			return m, "", fmt.Errorf("parsing %s: %w", path, err)
		}

		if m.Tokens.MachineName == "" {
			m.Tokens.MachineName = defaultMachineToken
		}
		if m.Tokens.Name == "" {
			m.Tokens.Name = defaultNameToken
		}
		return m, path, nil
	}

	return m, "", nil
}
