// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"cogentcore.org/timeline/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type pathCmd int32

const (
	moveTo pathCmd = iota
	lineTo
	cubeTo
	closePath
)

type pathOp struct {
	cmd pathCmd
	pts [3]math32.Vector2
}

// kappa is the control point distance for approximating a
// quarter circle with a cubic Bezier.
const kappa = 0.5522847498

func (pc *Context) addPoint(p math32.Vector2) math32.Vector2 {
	p = p.Add(pc.Origin)
	pc.pathBox.ExpandByPoint(p)
	return p
}

// MoveTo starts a new subpath at the given point.
func (pc *Context) MoveTo(x, y float32) {
	pc.path = append(pc.path, pathOp{cmd: moveTo, pts: [3]math32.Vector2{pc.addPoint(math32.Vec2(x, y))}})
}

// LineTo adds a line segment to the current path from the current point
// to the given point.
func (pc *Context) LineTo(x, y float32) {
	pc.path = append(pc.path, pathOp{cmd: lineTo, pts: [3]math32.Vector2{pc.addPoint(math32.Vec2(x, y))}})
}

// CubicTo adds a cubic Bezier curve to the current path, with the
// given control points and end point.
func (pc *Context) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	pc.path = append(pc.path, pathOp{cmd: cubeTo, pts: [3]math32.Vector2{
		pc.addPoint(math32.Vec2(x1, y1)),
		pc.addPoint(math32.Vec2(x2, y2)),
		pc.addPoint(math32.Vec2(x3, y3)),
	}})
}

// ClosePath closes the current subpath.
func (pc *Context) ClosePath() {
	pc.path = append(pc.path, pathOp{cmd: closePath})
}

// ClearPath clears the current path.
func (pc *Context) ClearPath() {
	pc.path = pc.path[:0]
	pc.pathBox.SetEmpty()
}

// DrawRectangle adds a rectangle to the current path.
func (pc *Context) DrawRectangle(x, y, w, h float32) {
	pc.MoveTo(x, y)
	pc.LineTo(x+w, y)
	pc.LineTo(x+w, y+h)
	pc.LineTo(x, y+h)
	pc.ClosePath()
}

// DrawEllipse adds an ellipse centered at the given point with the
// given radii to the current path.
func (pc *Context) DrawEllipse(x, y, rx, ry float32) {
	kx, ky := rx*kappa, ry*kappa
	pc.MoveTo(x+rx, y)
	pc.CubicTo(x+rx, y+ky, x+kx, y+ry, x, y+ry)
	pc.CubicTo(x-kx, y+ry, x-rx, y+ky, x-rx, y)
	pc.CubicTo(x-rx, y-ky, x-kx, y-ry, x, y-ry)
	pc.CubicTo(x+kx, y-ry, x+rx, y-ky, x+rx, y)
	pc.ClosePath()
}

// DrawCircle adds a circle to the current path.
func (pc *Context) DrawCircle(x, y, r float32) {
	pc.DrawEllipse(x, y, r, r)
}

// DrawPolygon adds a closed polygon through the given points to the current path.
func (pc *Context) DrawPolygon(points []math32.Vector2) {
	if len(points) == 0 {
		return
	}
	pc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		pc.LineTo(p.X, p.Y)
	}
	pc.ClosePath()
}

// DrawLine adds a line of the given width between the two points to the
// current path, as a filled quadrilateral.
func (pc *Context) DrawLine(x1, y1, x2, y2, width float32) {
	d := math32.Vec2(x2-x1, y2-y1)
	l := d.Length()
	if l == 0 {
		return
	}
	n := math32.Vec2(-d.Y/l, d.X/l).MulScalar(width / 2)
	pc.MoveTo(x1+n.X, y1+n.Y)
	pc.LineTo(x2+n.X, y2+n.Y)
	pc.LineTo(x2-n.X, y2-n.Y)
	pc.LineTo(x1-n.X, y1-n.Y)
	pc.ClosePath()
}

// Fill fills the current path with the given color, using the
// non-zero winding rule. The path is cleared after this operation.
func (pc *Context) Fill(c color.Color) {
	defer pc.ClearPath()
	if len(pc.path) == 0 || pc.pathBox.IsEmpty() {
		return
	}
	r := pc.pathBox.ToRect().Intersect(pc.Clip)
	if r.Empty() {
		return
	}
	mask := pc.rasterize(r)
	draw.DrawMask(pc.Image, r, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// rasterize renders the current path into the scratch mask, with the
// mask origin at r.Min, and returns the mask.
func (pc *Context) rasterize(r image.Rectangle) *image.Alpha {
	sc := pc.scratch
	sz := r.Size()
	if sc.raster == nil {
		sc.raster = vector.NewRasterizer(sz.X, sz.Y)
	} else {
		sc.raster.Reset(sz.X, sz.Y)
	}
	n := sz.X * sz.Y
	if cap(sc.pix) < n {
		sc.pix = make([]uint8, n)
	}
	mask := &image.Alpha{Pix: sc.pix[:n], Stride: sz.X, Rect: image.Rectangle{Max: sz}}
	clear(mask.Pix)

	off := math32.FromPoint(r.Min)
	z := sc.raster
	for _, op := range pc.path {
		p0 := op.pts[0].Sub(off)
		switch op.cmd {
		case moveTo:
			z.MoveTo(p0.X, p0.Y)
		case lineTo:
			z.LineTo(p0.X, p0.Y)
		case cubeTo:
			p1 := op.pts[1].Sub(off)
			p2 := op.pts[2].Sub(off)
			z.CubeTo(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
		case closePath:
			z.ClosePath()
		}
	}
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if pc.Flat {
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	return mask
}
