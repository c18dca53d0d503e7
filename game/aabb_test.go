package game

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/stretchr/testify/require"
)

func TestBoxTo32(t *testing.T) {
	bb := BoxTo32(df_cube.Box(-1.5, 2, 0, 3, 4.25, 10))
	require.Equal(t, float32(-1.5), bb.Min().X())
	require.Equal(t, float32(4.25), bb.Max().Y())
	require.Equal(t, float32(10), bb.Max().Z())
}
