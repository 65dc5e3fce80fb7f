package ui

import (
	"math"

	"github.com/samdwyer/mazewalk/internal/collision"
)

// RayHit is the result of CastRay.
type RayHit struct {
	Hit      bool
	Distance float32 // Along the ray, in units of the ray direction's length
	Side     int     // 0 if the wall face is crossed along X, 1 along Z
	GX, GY   int     // Index of the wall cell
}

// CastRay walks a ray from world position (px, pz) along (dx, dz) through
// grid cells until it enters a cell that is not open or travels maxDist.
// Distances are measured along the ray direction so a camera-plane ray gives
// perpendicular wall distance.
func CastRay(g collision.Grid, px, pz, dx, dz, maxDist float32) RayHit {
	ox, oy := g.Origin()
	u := float64(px) - float64(ox) + 0.5
	v := float64(pz) - float64(oy) + 0.5
	mapX, mapY := int(math.Floor(u)), int(math.Floor(v))

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if dx != 0 {
		deltaX = math.Abs(1 / float64(dx))
	}
	if dz != 0 {
		deltaY = math.Abs(1 / float64(dz))
	}

	stepX, stepY := 1, 1
	sideX := (float64(mapX) + 1 - u) * deltaX
	sideY := (float64(mapY) + 1 - v) * deltaY
	if dx < 0 {
		stepX = -1
		sideX = (u - float64(mapX)) * deltaX
	}
	if dz < 0 {
		stepY = -1
		sideY = (v - float64(mapY)) * deltaY
	}

	for {
		var dist float64
		var side int
		if sideX < sideY {
			dist = sideX
			sideX += deltaX
			mapX += stepX
		} else {
			dist = sideY
			sideY += deltaY
			mapY += stepY
			side = 1
		}

		if dist > float64(maxDist) || math.IsInf(dist, 1) {
			return RayHit{Distance: maxDist}
		}
		if !g.Open(mapX, mapY) {
			return RayHit{
				Hit:      true,
				Distance: float32(dist),
				Side:     side,
				GX:       mapX,
				GY:       mapY,
			}
		}
	}
}
