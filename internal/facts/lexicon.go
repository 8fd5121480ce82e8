package facts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/*.json
var lexiconFiles embed.FS

// skillLexicon is the fixed list of technology and skill terms matched by
// the skill rule.
type skillLexicon struct {
	Skills []string `json:"skills"`
}

// titleLexicon holds the seniority qualifiers and role nouns combined by
// the title rule.
type titleLexicon struct {
	Qualifiers []string `json:"qualifiers"`
	Roles      []string `json:"roles"`
}

var (
	loadOnce     sync.Once
	loadedSkills skillLexicon
	loadedTitles titleLexicon
)

// loadLexicons parses the embedded lexicon files once. The files are part
// of the build, so a parse failure is a programming error.
func loadLexicons() {
	loadOnce.Do(func() {
		if err := loadJSON("data/skills.json", &loadedSkills); err != nil {
			panic(err)
		}
		if err := loadJSON("data/titles.json", &loadedTitles); err != nil {
			panic(err)
		}
	})
}

func loadJSON(path string, v any) error {
	data, err := lexiconFiles.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read embedded lexicon %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}
	return nil
}

// SkillLexicon returns the skill terms used by the skill rule.
func SkillLexicon() []string {
	loadLexicons()
	return loadedSkills.Skills
}
