package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gymtrack/internal/store"

	log "github.com/sirupsen/logrus"
)

// Repo persists a Program as a single JSON document.
type Repo struct {
	path string
}

func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

func (r *Repo) Path() string {
	return r.path
}

// Load reads the program file. A missing file is an empty program. A file
// that cannot be read or parsed also yields an empty program, together with
// an error wrapping store.ErrStorageCorrupt.
func (r *Repo) Load() (Program, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		log.Debugf("program file %s not found, starting empty", r.path)
		return Program{}, nil
	}
	if err != nil {
		return Program{}, fmt.Errorf("%w: read %s: %v", store.ErrStorageCorrupt, r.path, err)
	}

	var p Program
	if err := json.Unmarshal(data, &p); err != nil {
		return Program{}, fmt.Errorf("%w: parse %s: %v", store.ErrStorageCorrupt, r.path, err)
	}
	if p == nil {
		p = Program{}
	}
	for day, exercises := range p {
		if exercises == nil {
			p[day] = []string{}
		}
	}

	log.Debugf("loaded program with %d day(s) from %s", len(p), r.path)
	return p, nil
}

// Save overwrites the program file with p.
func (r *Repo) Save(p Program) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := store.WriteFile(r.path, data); err != nil {
		return fmt.Errorf("save program: %w", err)
	}
	log.Debugf("saved program with %d day(s) to %s", len(p), r.path)
	return nil
}

// Marshal renders p the way it is stored: indented JSON, keys sorted,
// trailing newline.
func Marshal(p Program) ([]byte, error) {
	if p == nil {
		p = Program{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("marshal program: %w", err)
	}
	return buf.Bytes(), nil
}
