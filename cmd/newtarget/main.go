package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const scriptsDir = "internal/scripts"

const tmpl = `package scripts

import (
	"interact3d/internal/components"
	"interact3d/internal/engine"

	"go.uber.org/zap"
)

type {{.Name}} struct {
	components.Interactable

	Prompt  string
	Enabled bool
}

func (s *{{.Name}}) PromptText() string {
	return s.Prompt
}

func (s *{{.Name}}) CanInteract() bool {
	return s.Enabled
}

func (s *{{.Name}}) Interact(actor *engine.GameObject) {
	zap.S().Infof("{{.Name}}: %s used by %s", s.GetGameObject().Name, actor.Name)
}

func init() {
	engine.RegisterScript("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer)
}

func {{.Lower}}Factory(props map[string]any) engine.Component {
	return &{{.Name}}{
		Prompt:  engine.PropString(props, "prompt", "Press E to use {{.Name}}"),
		Enabled: engine.PropBool(props, "enabled", true),
	}
}

func {{.Lower}}Serializer(c engine.Component) map[string]any {
	s, ok := c.(*{{.Name}})
	if !ok {
		return nil
	}
	return map[string]any{
		"prompt":  s.Prompt,
		"enabled": s.Enabled,
	}
}
`

var errBadName = errors.New("script name must start with an uppercase letter")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newtarget <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newtarget Lever\n")
		os.Exit(1)
	}

	name := os.Args[1]
	filename, content, err := render(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(scriptsDir, filename)

	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Target \"%s\" registered. Add it to a scene target:\n\n", name)
	fmt.Printf("  - name: My%s\n", name)
	fmt.Printf("    position: [0, 0, 3]\n")
	fmt.Printf("    scripts:\n")
	fmt.Printf("      - name: %s\n", name)
	fmt.Printf("        props: {prompt: \"Press E to use\"}\n")
}

// render returns the file name and source of a new target script.
func render(name string) (string, string, error) {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return "", "", errBadName
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", "", fmt.Errorf("script name %q is not a Go identifier", name)
		}
	}
	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]

	content := tmpl
	content = strings.ReplaceAll(content, "{{.Name}}", name)
	content = strings.ReplaceAll(content, "{{.Lower}}", lower)
	return toSnakeCase(name) + ".go", content, nil
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
