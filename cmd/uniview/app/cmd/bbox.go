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

package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iico/uniview/pkg/uniview/bbox"
	"github.com/iico/uniview/pkg/uniview/util"
)

var (
	bboxFrom  string
	bboxTo    string
	bboxShape string
)

// For testing
var bboxStdin io.Reader = os.Stdin

// NewCmdBbox describes the CLI command to convert bounding boxes between
// annotation formats.
func NewCmdBbox(out io.Writer) *cobra.Command {
	return NewCmd(out, "bbox").
		WithDescription("Convert bounding boxes between annotation formats").
		WithLongDescription("Convert bounding boxes between annotation formats. Boxes are read one per line, four numbers each, from a file or from stdin, and trimmed to the image while converting.").
		WithExample("Convert yolo boxes to albumentations format", "bbox --from yolo --to albu --shape 100x200 boxes.txt").
		WithExample("Convert yolo boxes read from stdin to coco format", "bbox --from yolo --to coco --shape 100x100").
		WithFlags(func(f *pflag.FlagSet) {
			f.StringVar(&bboxFrom, "from", bbox.FormatYolo, "Input format (coco, yolo or albu)")
			f.StringVar(&bboxTo, "to", bbox.FormatAlbu, "Output format (albu, or coco for yolo input)")
			f.StringVar(&bboxShape, "shape", "", "Image shape as HEIGHTxWIDTH")
		}).
		MaximumArgs(1, doBbox)
}

func doBbox(_ context.Context, out io.Writer, args []string) error {
	shape, err := parseShape(bboxShape)
	if err != nil {
		return err
	}

	var in io.Reader = bboxStdin
	if len(args) > 0 {
		buf, err := afero.ReadFile(util.Fs, args[0])
		if err != nil {
			return fmt.Errorf("reading boxes from %q: %w", args[0], err)
		}
		in = bytes.NewReader(buf)
	}

	boxes, err := readBoxes(in)
	if err != nil {
		return err
	}

	var converted []bbox.Box
	switch bboxTo {
	case bbox.FormatAlbu:
		converted, err = bbox.ToAlbu(boxes, bboxFrom, shape)
		if err != nil {
			return err
		}
	case bbox.FormatCoco:
		if bboxFrom != bbox.FormatYolo {
			return fmt.Errorf("converting to coco is only supported from yolo, got %q", bboxFrom)
		}
		converted = bbox.YoloToCoco(boxes, shape)
	default:
		return fmt.Errorf("unknown output format %q", bboxTo)
	}

	// Six significant digits is plenty for pixel coordinates and keeps
	// float artifacts out of the output.
	for _, b := range converted {
		fmt.Fprintf(out, "%.6g %.6g %.6g %.6g\n", b[0], b[1], b[2], b[3])
	}
	return nil
}

// parseShape parses a HEIGHTxWIDTH image shape, e.g. `100x200`.
func parseShape(value string) (bbox.Shape, error) {
	parts := strings.Split(value, "x")
	if len(parts) != 2 {
		return bbox.Shape{}, fmt.Errorf("invalid shape %q: expected HEIGHTxWIDTH", value)
	}

	height, err := strconv.Atoi(parts[0])
	if err != nil {
		return bbox.Shape{}, fmt.Errorf("invalid shape height %q: %w", parts[0], err)
	}
	width, err := strconv.Atoi(parts[1])
	if err != nil {
		return bbox.Shape{}, fmt.Errorf("invalid shape width %q: %w", parts[1], err)
	}
	if height <= 0 || width <= 0 {
		return bbox.Shape{}, fmt.Errorf("invalid shape %q: dimensions must be positive", value)
	}

	return bbox.Shape{Height: height, Width: width}, nil
}

// readBoxes parses one box per line, four numbers each. Blank lines are
// skipped.
func readBoxes(in io.Reader) ([]bbox.Box, error) {
	var boxes []bbox.Box

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("invalid box %q: expected 4 numbers", scanner.Text())
		}

		var box bbox.Box
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid box coordinate %q: %w", field, err)
			}
			box[i] = v
		}
		boxes = append(boxes, box)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading boxes: %w", err)
	}

	return boxes, nil
}
