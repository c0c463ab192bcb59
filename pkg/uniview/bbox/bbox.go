/*
Copyright 2021 The Uniview Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bbox converts 2D bounding boxes between the annotation formats
// used by the uniview datasets:
//
//	coco: (x, y, width, height) in pixels
//	yolo: (center-x, center-y, width, height) normalized to the image
//	albu: (xmin, ymin, xmax, ymax) normalized to the image
//
// Boxes that extend past the image are trimmed into it: origins are moved to
// the image, far edges are clamped to the last valid pixel coordinate.
package bbox

import (
	"fmt"
	"math"
)

// Box holds the four coordinates of one bounding box. Their meaning depends
// on the format.
type Box [4]float64

// Shape is an image shape in pixels.
type Shape struct {
	Height int
	Width  int
}

// Formats accepted by ToAlbu.
const (
	FormatCoco = "coco"
	FormatYolo = "yolo"
	FormatAlbu = "albu"
)

// YoloToCoco converts normalized center boxes to pixel corner-plus-size
// boxes, trimmed to the image.
func YoloToCoco(boxes []Box, shape Shape) []Box {
	w, h := float64(shape.Width), float64(shape.Height)

	out := make([]Box, len(boxes))
	for i, b := range boxes {
		bw := b[2] * w
		bh := b[3] * h
		x := math.Max(b[0]*w-bw/2, 0)
		y := math.Max(b[1]*h-bh/2, 0)
		bw = math.Min(bw, (w-1)-x)
		bh = math.Min(bh, (h-1)-y)

		out[i] = Box{x, y, bw, bh}
	}
	return out
}

// CocoToAlbu converts pixel corner-plus-size boxes to normalized corner
// boxes, trimmed to the image.
func CocoToAlbu(boxes []Box, shape Shape) []Box {
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		out[i] = normalizeCorners(b[0], b[1], b[0]+b[2], b[1]+b[3], shape)
	}
	return out
}

// YoloToAlbu converts normalized center boxes to normalized corner boxes,
// trimmed to the image.
func YoloToAlbu(boxes []Box, shape Shape) []Box {
	w, h := float64(shape.Width), float64(shape.Height)

	out := make([]Box, len(boxes))
	for i, b := range boxes {
		bw := b[2] * w
		bh := b[3] * h
		x0 := b[0]*w - bw/2
		y0 := b[1]*h - bh/2

		out[i] = normalizeCorners(x0, y0, x0+bw, y0+bh, shape)
	}
	return out
}

// ToAlbu converts boxes of any supported format to albu. Boxes already in
// albu format are trimmed to the image as well.
func ToAlbu(boxes []Box, format string, shape Shape) ([]Box, error) {
	switch format {
	case FormatCoco:
		return CocoToAlbu(boxes, shape), nil
	case FormatYolo:
		return YoloToAlbu(boxes, shape), nil
	case FormatAlbu:
		w, h := float64(shape.Width), float64(shape.Height)
		out := make([]Box, len(boxes))
		for i, b := range boxes {
			out[i] = normalizeCorners(b[0]*w, b[1]*h, b[2]*w, b[3]*h, shape)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown box format %q", format)
	}
}

// normalizeCorners trims pixel corners to the image, then normalizes them by
// the image size. The far edges clamp to the last pixel coordinate, so a
// full-size box ends at (dim-1)/dim rather than 1.0.
func normalizeCorners(x0, y0, x1, y1 float64, shape Shape) Box {
	w, h := float64(shape.Width), float64(shape.Height)

	x0 = clamp(x0, 0, w-1)
	x1 = clamp(x1, 0, w-1)
	y0 = clamp(y0, 0, h-1)
	y1 = clamp(y1, 0, h-1)

	return Box{x0 / w, y0 / h, x1 / w, y1 / h}
}

func clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}
