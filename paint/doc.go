// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint renders simple vector geometry onto an [image.RGBA].

A [Context] either paints anti-aliased shapes, for the visible surface of a
timeline, or flat shapes whose coverage is thresholded so that every pixel is
exactly the fill color. Flat contexts back picking surfaces, where each pixel
color identifies a region and blended edge colors would be misread.

Rasterization uses golang.org/x/image/vector.
*/
package paint
