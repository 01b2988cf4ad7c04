package gallery

import (
	"net/http"
	"strconv"

	"krown/infras/otel"
	"krown/internal/domains/gallery/model/dto"
	"krown/internal/domains/gallery/service"
	"krown/shared/constant"
	"krown/shared/failure"
	"krown/shared/validator"
	"krown/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGallery)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

// GetGallery lists the café gallery images.
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Data[[]model.Image] "Gallery images"
// @Failure 502 {object} response.Error
// @Router /v1/gallery [get]
// @Security BearerAuth
func (handler *Handler) GetGallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGallery")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	images, err := handler.service.List(ctx, cafeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, images)
}

// UploadImage uploads a gallery image to S3 and registers it for the café.
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 201 {object} dto.UploadImageResponse "Image uploaded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(writer, failure.BadRequestFromString("image file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, cafeID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeleteImage removes a gallery image and its S3 object.
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path int true "Image ID"
// @Param image_url query string true "Image URL"
// @Success 200 {object} response.Message "Image deleted"
// @Failure 400 {object} response.Error
// @Router /v1/gallery/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	cafeID, _ := ctx.Value(constant.ContextKeyCafeID).(string)

	imageID, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("image id must be numeric"))

		return
	}

	imageURL := request.URL.Query().Get(constant.RequestParamImageURL)

	if err := handler.service.DeleteImage(ctx, cafeID, imageID, imageURL); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Image deleted successfully")
}
