// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Easing maps linear progress in [0, 1] to eased progress in [0, 1],
// with Easing(0) == 0 and Easing(1) == 1.
type Easing func(p float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 {
	return p
}

// EaseOutQuad decelerates towards the end.
func EaseOutQuad(p float64) float64 {
	return p * (2 - p)
}

// EaseInOutCubic accelerates until halfway, then decelerates.
func EaseInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := 2*p - 2
	return 1 + q*q*q/2
}
