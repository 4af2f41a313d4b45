//go:build ignore
// +build ignore

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "Icon.png")
	}

	// Create a 512x512 icon with a dark background and an eighth note shape
	img := image.NewRGBA(image.Rect(0, 0, 512, 512))

	// Background - deep purple
	bgColor := color.RGBA{24, 17, 39, 255}
	accentColor := color.RGBA{168, 85, 247, 255}

	// Fill background
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			img.Set(x, y, bgColor)
		}
	}

	// Note head - filled ellipse, slightly wider than tall
	cx, cy := 200, 360
	rx, ry := 90, 65

	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)

			if dx*dx+dy*dy <= 1.0 {
				img.Set(x, y, accentColor)
			}
		}
	}

	// Stem - vertical bar rising from the right edge of the head
	for y := 120; y <= cy; y++ {
		for j := -12; j < 12; j++ {
			x := cx + rx - 12 + j
			if x >= 0 && x < 512 {
				img.Set(x, y, accentColor)
			}
		}
	}

	// Flag - diagonal stroke from the top of the stem
	for i := 0; i < 130; i++ {
		for j := -14; j < 14; j++ {
			x := cx + rx - 12 + i
			y := 120 + i/2 + j
			if x < 512 && y < 512 && x >= 0 && y >= 0 {
				img.Set(x, y, accentColor)
			}
		}
	}

	f, err := os.Create(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer f.Close()

	png.Encode(f, img)
}
