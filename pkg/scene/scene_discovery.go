package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene or a scene file on disk
type SceneInfo struct {
	ID          string // Name accepted by the -scene flag
	Name        string
	Description string
	Type        string // "builtin" or "file"
	FilePath    string // Scene file path (file type only)
}

// builtin is a registered scene constructor
type builtin struct {
	info   SceneInfo
	create func() *Scene
}

var builtins = []builtin{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Diffuse and mirror spheres on a floor"}, NewDefaultScene},
	{SceneInfo{ID: "glass", Name: "Glass", Description: "Water ellipsoid inside a glass sphere under a spotlight"}, NewGlassScene},
	{SceneInfo{ID: "textured", Name: "Textured", Description: "Checker sphere with a smooth-shaded UV-mapped backdrop"}, NewTexturedScene},
}

// BuiltinScenes lists the built-in scenes in registration order
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtins))
	for i, b := range builtins {
		infos[i] = b.info
		infos[i].Type = "builtin"
	}
	return infos
}

// NewBuiltinScene creates the built-in scene with the given ID
func NewBuiltinScene(id string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.create(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// Load resolves name as a built-in scene ID first, then as a scene file path
func Load(name string) (*Scene, error) {
	if s, err := NewBuiltinScene(name); err == nil {
		return s, nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("%q is neither a built-in scene nor a readable scene file: %w", name, err)
	}
	return LoadScene(name)
}

// ListSceneFiles scans dir for *.txt scene files. A missing directory gives
// an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads "# Scene:" and "# Description:" lines from the
// comment block at the top of a scene file. The name falls back to the
// title-cased file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	return append(BuiltinScenes(), files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-spheres" -> "Glass Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
