package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"

	"go.trai.ch/memo/internal/app"
	_ "go.trai.ch/memo/internal/wiring"
)

// TestExecuteComponents resolves the full dependency graph the binary uses
// at startup. A broken node registration or a missing edge fails here
// instead of at runtime.
func TestExecuteComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)

	require.NotNil(t, components.App)
	require.NotNil(t, components.Codecs)
	require.NotNil(t, components.Store)
}
