package session

import (
	"context"
	"fmt"
	"os"
)

// EnvKeyGate satisfies the paid-generation precondition from configuration:
// a key present in the named environment variable counts as selected. There
// is no interactive picker in a headless session, so SelectKey can only fail.
type EnvKeyGate struct {
	Var string
}

func (g EnvKeyGate) HasSelectedKey() bool {
	return os.Getenv(g.Var) != ""
}

func (g EnvKeyGate) SelectKey(ctx context.Context) error {
	return fmt.Errorf("no API key selected for video generation (set %s)", g.Var)
}
