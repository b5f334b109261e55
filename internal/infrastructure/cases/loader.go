package cases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

// Loader reads the case list for a run from a JSON or YAML file. The
// document is validated against the embedded schema before decoding;
// any load failure is fatal for the whole run.
type Loader struct {
	path   string
	schema *jsonschema.Schema
}

func NewLoader(path string) (*Loader, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.WrapError(domain.ErrFixture, "init case loader", errors.New("cases path is empty"))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("cases-schema.json", strings.NewReader(casesSchema)); err != nil {
		return nil, fmt.Errorf("add cases schema: %w", err)
	}
	schema, err := compiler.Compile("cases-schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile cases schema: %w", err)
	}

	return &Loader{path: path, schema: schema}, nil
}

func (l *Loader) Load(_ context.Context) ([]domain.Case, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, domain.WrapError(domain.ErrFixture, "read cases file", err)
	}

	yamlFormat := isYAMLPath(l.path)

	var doc any
	if yamlFormat {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrFixture, "parse cases file", err)
	}

	if err := l.schema.Validate(doc); err != nil {
		return nil, domain.WrapError(domain.ErrFixture, "validate cases file", err)
	}

	var loaded []domain.Case
	if yamlFormat {
		err = yaml.Unmarshal(data, &loaded)
	} else {
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrFixture, "decode cases file", err)
	}
	if len(loaded) == 0 {
		return nil, domain.WrapError(domain.ErrFixture, "decode cases file", errors.New("cases file contains no cases"))
	}

	for i := range loaded {
		if loaded[i].Input.Name == "" {
			loaded[i].Input.Name = filepath.Base(loaded[i].Input.FilePath)
		}
	}
	return loaded, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
