package helper

import (
	"net/url"
	"strconv"
	"time"

	"ubwiza_rentals/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
)

// UploadFolder is where staff uploads of room, gallery and apartment images land.
const UploadFolder = "ubwiza"

// InitCloudinary returns nil when no credentials are configured.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, nil
	}
	return cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
}

type UploadSignature struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	Signature string `json:"signature"`
}

// SignUpload signs a browser direct upload so the API secret never leaves the server.
func SignUpload(cld *cloudinary.Cloudinary, folder string, now time.Time) (*UploadSignature, error) {
	timestamp := now.Unix()
	params := url.Values{}
	params.Set("folder", folder)
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, cld.Config.Cloud.APISecret)
	if err != nil {
		return nil, err
	}
	return &UploadSignature{
		CloudName: cld.Config.Cloud.CloudName,
		APIKey:    cld.Config.Cloud.APIKey,
		Timestamp: timestamp,
		Folder:    folder,
		Signature: signature,
	}, nil
}
