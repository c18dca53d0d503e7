package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
)

// BoxTo32 converts a dragonfly bounding box to a float32-cube bounding box.
func BoxTo32(b df_cube.BBox) cube.BBox {
	lo, hi := Vec64To32(b.Min()), Vec64To32(b.Max())
	return cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}
