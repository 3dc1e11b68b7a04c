package secrets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnvSource(t *testing.T) {
	source := NewEnvSource(zap.NewNop())

	t.Run("present variable", func(t *testing.T) {
		t.Setenv("API_KEY", "rzp_test_abc")

		value, err := source.GetCredential(context.Background(), "API_KEY")
		require.NoError(t, err)
		assert.Equal(t, "rzp_test_abc", value)
	})

	t.Run("absent variable yields empty string", func(t *testing.T) {
		value, err := source.GetCredential(context.Background(), "NO_SUCH_CREDENTIAL")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}
