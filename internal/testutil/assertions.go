package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/stretchr/testify/require"
)

// RequireWarning fails unless one of warnings has the given kind and a
// message containing substr.
func RequireWarning(t *testing.T, warnings []kserrors.Warning, kind kserrors.WarningKind, substr string) {
	t.Helper()
	for _, w := range warnings {
		if w.Kind == kind && strings.Contains(w.Msg, substr) {
			return
		}
	}
	require.Failf(t, "warning not found", "no %s warning containing %q in %v", kind, substr, warnings)
}

// RequireErrorKind fails unless err is a kickstart error of kind whose
// message contains substr.
func RequireErrorKind(t *testing.T, err error, kind kserrors.Kind, substr string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, kserrors.KindOf(err), "unexpected kind for %v", err)
	require.Contains(t, err.Error(), substr)
}
