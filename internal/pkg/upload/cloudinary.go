package upload

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Result is what the media host hands back for a stored file
type Result struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// CloudinaryUploader stores files in a Cloudinary folder
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader from account credentials
func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// Upload stores a multipart file and returns its URL and public id
func (u *CloudinaryUploader) Upload(ctx context.Context, file *multipart.FileHeader) (*Result, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	resp, err := u.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

// Destroy removes a previously uploaded file
func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
