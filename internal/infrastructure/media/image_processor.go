// Package media provides image processing utilities
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// variantWidths are the WebP sizes generated for each uploaded raster asset.
var variantWidths = []int{1200, 600, 300}

// ImageProcessor handles asset upload processing under the media directory.
type ImageProcessor struct {
	basePath string
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{
		basePath: basePath,
	}
}

// ProcessBase64Image handles any base64 image upload with automatic format
// detection. Returns the full file path on disk.
func (p *ImageProcessor) ProcessBase64Image(data, filename, subdir string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	fullFilename := fmt.Sprintf("%s.%s", filename, ext)

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if strings.Contains(data, "image/svg+xml") {
		return processSVG(data, fullFilename, targetDir)
	}
	return processBinaryImage(data, fullFilename, targetDir)
}

// ProcessAssetWithVariants saves an uploaded image and generates WebP size
// variants for responsive srcset use. SVG uploads skip variant generation.
// Returns the asset's relative URL and the variant URLs.
func (p *ImageProcessor) ProcessAssetWithVariants(data, assetID string) (string, []string, error) {
	if data == "" {
		return "", nil, fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", nil, fmt.Errorf("unsupported image format")
	}

	// Timestamped filename keeps re-uploads from colliding with cached URLs.
	timestamp := time.Now().UnixMilli()
	filename := fmt.Sprintf("%s-%d.%s", assetID, timestamp, ext)

	uploadsDir := filepath.Join(p.basePath, "images", "uploads")
	variantsDir := filepath.Join(p.basePath, "images", "variants")

	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	relativeOriginal := "/media/images/uploads/" + filename

	if ext == "svg" {
		if _, err := processSVG(data, filename, uploadsDir); err != nil {
			return "", nil, err
		}
		return relativeOriginal, nil, nil
	}

	if err := os.MkdirAll(variantsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create variants directory: %w", err)
	}

	originalPath, err := processBinaryImage(data, filename, uploadsDir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to save original image: %w", err)
	}

	variantPaths, err := p.generateWebPVariants(originalPath, assetID, timestamp, variantsDir)
	if err != nil {
		// Without variants the upload is incomplete; remove the original too.
		os.Remove(originalPath)
		return "", nil, fmt.Errorf("failed to generate variants: %w", err)
	}

	relativeVariants := make([]string, len(variantPaths))
	for i, variantPath := range variantPaths {
		relativeVariants[i] = "/media/images/variants/" + filepath.Base(variantPath)
	}

	return relativeOriginal, relativeVariants, nil
}

// BuildSrcSet renders variant URLs as an HTML srcset attribute value.
func BuildSrcSet(variantURLs []string) string {
	if len(variantURLs) != len(variantWidths) {
		return ""
	}
	parts := make([]string, len(variantURLs))
	for i, url := range variantURLs {
		parts[i] = fmt.Sprintf("%s %dw", url, variantWidths[i])
	}
	return strings.Join(parts, ", ")
}

// DeleteAsset removes an uploaded image and its generated variants.
func (p *ImageProcessor) DeleteAsset(imagePath string) error {
	if imagePath == "" {
		return fmt.Errorf("empty image path")
	}

	filename := filepath.Base(imagePath)
	basename := filename
	if dotIndex := strings.LastIndex(filename, "."); dotIndex != -1 {
		basename = filename[:dotIndex]
	}

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(imagePath, "/media/"))
	if err := os.Remove(originalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}

	variantsDir := filepath.Join(p.basePath, "images", "variants")
	for _, width := range variantWidths {
		variantPath := filepath.Join(variantsDir, fmt.Sprintf("%s_%dpx.webp", basename, width))
		// Missing variants are fine; partial uploads and SVGs have none.
		os.Remove(variantPath)
	}

	return nil
}

// generateWebPVariants creates the WebP size variants for a raster image.
func (p *ImageProcessor) generateWebPVariants(originalPath, assetID string, timestamp int64, variantsDir string) ([]string, error) {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	basename := fmt.Sprintf("%s-%d", assetID, timestamp)
	variantPaths := make([]string, len(variantWidths))

	for i, width := range variantWidths {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)

		variantFilename := fmt.Sprintf("%s_%dpx.webp", basename, width)
		variantPath := filepath.Join(variantsDir, variantFilename)

		if err := webp.Save(variantPath, resized, &webp.Options{Quality: 85}); err != nil {
			for j := 0; j < i; j++ {
				os.Remove(variantPaths[j])
			}
			return nil, fmt.Errorf("failed to save WebP variant %s: %w", variantFilename, err)
		}

		variantPaths[i] = variantPath
	}

	return variantPaths, nil
}

// processSVG handles SVG-specific base64 processing
func processSVG(data, filename, targetDir string) (string, error) {
	svgPattern := regexp.MustCompile(`^data:image/svg\+xml;base64,`)
	if !svgPattern.MatchString(data) {
		return "", fmt.Errorf("invalid SVG base64 format")
	}

	b64Data := svgPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write SVG file: %w", err)
	}

	return fullPath, nil
}

// processBinaryImage handles binary image processing (PNG, JPG, ICO, WebP)
func processBinaryImage(data, filename, targetDir string) (string, error) {
	binaryPattern := regexp.MustCompile(`^data:image/\w+;base64,`)
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write binary file: %w", err)
	}

	return fullPath, nil
}

// extractExtension auto-detects file extension from MIME type
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/svg+xml"):
		return "svg"
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/x-icon"), strings.Contains(data, "data:image/vnd.microsoft.icon"):
		return "ico"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	}
	// Fallback to PNG
	return "png"
}
