package dto

import (
	"mime/multipart"

	"krown/internal/domains/gallery/model"
)

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

// GalleryResponse is the upstream image list for a café.
type GalleryResponse struct {
	Images []model.Image `json:"images"`
}
