package media_storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Connect Cloudinary successfully.", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryAdapter{cld: cld, logger: log}, nil
}

// Upload stores file as a raw asset under folder/publicID.
func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// List pages through the raw assets under prefix.
func (a *cloudinaryAdapter) List(ctx context.Context, prefix string) ([]service.StoredObject, error) {
	var objects []service.StoredObject
	cursor := ""
	for {
		result, err := a.cld.Admin.Assets(ctx, admin.AssetsParams{
			AssetType:    api.File,
			DeliveryType: "upload",
			Prefix:       prefix,
			MaxResults:   500,
			NextCursor:   cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list cloudinary assets: %w", err)
		}
		if result.Error.Message != "" {
			return nil, fmt.Errorf("cloudinary rejected list: %s", result.Error.Message)
		}
		for _, asset := range result.Assets {
			objects = append(objects, service.StoredObject{PublicID: asset.PublicID, CreatedAt: asset.CreatedAt})
		}
		if result.NextCursor == "" {
			return objects, nil
		}
		cursor = result.NextCursor
	}
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, publicID string) error {
	result, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary rejected delete of %s: %s", publicID, result.Error.Message)
	}
	a.logger.Debug("Deleted cloudinary asset", zap.String("public_id", publicID))
	return nil
}
