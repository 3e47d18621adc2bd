// Package media renders the catalog image variants. Uploaded product
// images are stored once at full size; this service derives the
// thumbnail and listing sizes plus a WebP copy of each, written next to
// the original under the media directory.
package media

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Variant is one derived rendition of a source image.
type Variant struct {
	Suffix string
	Width  int
	Height int
	// Fill crops to exactly Width x Height; otherwise the image is fit
	// inside the box preserving aspect ratio.
	Fill bool
}

// DefaultVariants are the renditions the storefront serves: a square
// grid thumbnail and a listing image.
var DefaultVariants = []Variant{
	{Suffix: "thumb", Width: 300, Height: 300, Fill: true},
	{Suffix: "small", Width: 600, Height: 600},
}

const (
	jpegQuality = 85
	webpQuality = 80
)

// Result summarizes one ProcessDir run.
type Result struct {
	Processed int
	Skipped   int
	Warnings  []string
}

// ProcessImage derives all variants for one source file. Existing
// outputs are overwritten. Returns the paths written.
func ProcessImage(srcPath string, variants []Variant) ([]string, error) {
	src, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", srcPath, err)
	}

	ext := filepath.Ext(srcPath)
	base := strings.TrimSuffix(srcPath, ext)

	var written []string
	for _, v := range variants {
		img := renderVariant(src, v)

		jpegPath := fmt.Sprintf("%s_%s.jpg", base, v.Suffix)
		if err := imaging.Save(img, jpegPath, imaging.JPEGQuality(jpegQuality)); err != nil {
			return written, fmt.Errorf("save %s: %w", jpegPath, err)
		}
		written = append(written, jpegPath)

		webpPath := fmt.Sprintf("%s_%s.webp", base, v.Suffix)
		if err := saveWebP(img, webpPath); err != nil {
			return written, fmt.Errorf("save %s: %w", webpPath, err)
		}
		written = append(written, webpPath)
	}
	return written, nil
}

// ProcessDir walks a media directory and derives variants for every
// source image. Files that already look like derived variants are
// skipped so repeat runs stay idempotent.
func ProcessDir(dir string, variants []Variant) (*Result, error) {
	res := &Result{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !isSourceImage(path) {
			res.Skipped++
			return nil
		}
		if _, perr := ProcessImage(path, variants); perr != nil {
			res.Warnings = append(res.Warnings, perr.Error())
			return nil
		}
		res.Processed++
		return nil
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

func renderVariant(src image.Image, v Variant) image.Image {
	if v.Fill {
		return imaging.Fill(src, v.Width, v.Height, imaging.Center, imaging.Lanczos)
	}
	return imaging.Fit(src, v.Width, v.Height, imaging.Lanczos)
}

func saveWebP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return webp.Encode(f, img, &webp.Options{Quality: webpQuality})
}

// isSourceImage filters for originals: supported extensions that do not
// carry a variant suffix.
func isSourceImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, v := range DefaultVariants {
		if strings.HasSuffix(base, "_"+v.Suffix) {
			return false
		}
	}
	return true
}
