// core/pad/targets.go
package pad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Targets is the set of record ids to pad.
type Targets map[string]struct{}

func NewTargets(ids ...string) Targets {
	t := make(Targets, len(ids))
	for _, id := range ids {
		t[id] = struct{}{}
	}
	return t
}

func (t Targets) Has(id string) bool {
	_, ok := t[id]
	return ok
}

// LoadTargets reads one id per line. Lines are trimmed and blank lines
// skipped. Every other line is an id, '#' included; repeats collapse.
func LoadTargets(r io.Reader) (Targets, error) {
	t := Targets{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t[line] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func LoadTargetsFile(path string) (Targets, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	t, err := LoadTargets(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
