package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var ErrTaskNameRequired = errors.New("task name is required")

// TaskName trims raw and checks it fits within limit terminal cells. Wide
// characters count twice, matching how the name is rendered.
func TaskName(raw string, limit int) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrTaskNameRequired
	}
	if limit > 0 && ansi.StringWidth(name) > limit {
		return "", fmt.Errorf("task name is wider than %d cells", limit)
	}
	return name, nil
}
