// Package plan holds the ordered deployment steps. Slice order is execution
// order; a plan is built fresh for every invocation and never mutated.
package plan

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrEmptyPlan = errors.New("plan has no steps")

// Step is one shell command plus the description shown to the operator.
// ContinueOnFailure lets the sequence go on when the command exits non-zero.
type Step struct {
	Command           string `yaml:"command"`
	Description       string `yaml:"description"`
	ContinueOnFailure bool   `yaml:"continue_on_failure"`
}

type File struct {
	Steps []Step `yaml:"steps"`
}

// Default returns the admin panel release sequence.
func Default() []Step {
	return []Step{
		{Command: "git status", Description: "Verificando estado del repositorio"},
		{Command: "git fetch origin", Description: "Descargando cambios desde GitHub"},
		{Command: "git pull origin master", Description: "Actualizando código local"},
		{Command: "docker-compose down", Description: "Deteniendo contenedor actual", ContinueOnFailure: true},
		{Command: "docker-compose build --no-cache", Description: "Construyendo nueva imagen Docker"},
		{Command: "docker-compose up -d", Description: "Levantando nuevo contenedor"},
		{Command: "docker-compose ps", Description: "Verificando estado del contenedor"},
		{Command: "docker-compose logs --tail=50", Description: "Mostrando logs recientes", ContinueOnFailure: true},
	}
}

// Parse decodes and validates a YAML plan document.
func Parse(data []byte) ([]Step, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode plan")
	}
	if err := Validate(f.Steps); err != nil {
		return nil, err
	}
	return f.Steps, nil
}

// Load reads a plan file from disk.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read plan %s", path)
	}
	steps, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "plan %s", path)
	}
	return steps, nil
}

// Validate rejects empty plans and steps missing a command or description.
func Validate(steps []Step) error {
	if len(steps) == 0 {
		return ErrEmptyPlan
	}
	for i, s := range steps {
		if strings.TrimSpace(s.Command) == "" {
			return errors.Errorf("step %d: command is required", i+1)
		}
		if strings.TrimSpace(s.Description) == "" {
			return errors.Errorf("step %d: description is required", i+1)
		}
	}
	return nil
}
