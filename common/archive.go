package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pulse/types"
)

// AssetArchive uploads generated media plus a JSON sidecar record to S3.
// It implements the session's Archiver interface.
type AssetArchive struct {
	s3     *S3
	bucket string
	prefix string
}

// NewAssetArchive creates an archive targeting bucket with an optional
// key prefix.
func NewAssetArchive(s3c *S3, bucket, prefix string) *AssetArchive {
	prefix = strings.TrimSpace(prefix)
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &AssetArchive{s3: s3c, bucket: bucket, prefix: prefix}
}

// ArchiveAsset uploads the asset's media file and its metadata record.
// Assets whose URL is not a local file (placeholder references) are skipped.
func (a *AssetArchive) ArchiveAsset(ctx context.Context, asset *types.GeneratedAsset) error {
	if asset == nil {
		return nil
	}

	data, err := os.ReadFile(asset.URL)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read asset media: %w", err)
	}

	mediaKey := a.prefix + "assets/" + asset.ID + filepath.Ext(asset.URL)
	if err := a.s3.Put(ctx, a.bucket, mediaKey, bytes.NewReader(data), contentTypeForExt(filepath.Ext(asset.URL))); err != nil {
		return fmt.Errorf("failed to upload asset media: %w", err)
	}

	record, err := json.MarshalIndent(map[string]interface{}{
		"id":        asset.ID,
		"kind":      asset.Kind,
		"prompt":    asset.Prompt,
		"timestamp": asset.Timestamp,
		"media_key": mediaKey,
	}, "", "  ")
	if err != nil {
		return err
	}

	recordKey := a.prefix + "assets/" + asset.ID + ".json"
	return a.s3.Put(ctx, a.bucket, recordKey, bytes.NewReader(record), "application/json")
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}
