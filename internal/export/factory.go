package export

import (
	"context"
	"fmt"
	"os"

	"jobtrack/internal/config"
	"jobtrack/internal/tracker"
)

// NewDestinationFromConfig creates an ExportDestination based on the export config type.
func NewDestinationFromConfig(ctx context.Context, cfg config.ExportConfig) (tracker.ExportDestination, error) {
	switch cfg.Type {
	case "filesystem", "":
		if cfg.Dir == "" {
			return nil, fmt.Errorf("filesystem export requires dir to be set")
		}
		return NewFileSystemDestination(cfg.Dir)
	case "memory":
		return NewMemoryDestination(), nil
	case "s3":
		return NewS3Destination(ctx, S3Options{
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     os.Getenv(EnvS3AccessKeyID),
			SecretAccessKey: os.Getenv(EnvS3SecretAccessKey),
		})
	default:
		return nil, fmt.Errorf("unknown export type: %s", cfg.Type)
	}
}
