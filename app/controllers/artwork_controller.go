package controllers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/artcocktail/artcocktail/app/services"
	"github.com/artcocktail/artcocktail/config"
	"github.com/artcocktail/artcocktail/pkg/logger"
	"github.com/artcocktail/artcocktail/pkg/response"
	"github.com/artcocktail/artcocktail/pkg/router"
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ArtworkController serves /api/artworks.
type ArtworkController struct {
	service *services.CatalogService
}

func NewArtworkController(service *services.CatalogService) *ArtworkController {
	return &ArtworkController{service: service}
}

// List handles GET /api/artworks. An optional ?category= filter narrows the
// result; "all" and an empty value both mean no filter.
func (c *ArtworkController) List(w http.ResponseWriter, r *http.Request) {
	artworks, err := c.service.List(r.URL.Query().Get("category"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("artwork list failed", "error", err)
		response.Internal(w, "")
		return
	}
	response.Success(w, artworks)
}

// Get handles GET /api/artworks/{id}.
func (c *ArtworkController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	artwork, err := c.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(w, "Artwork not found")
			return
		}
		logger.WithCtx(r.Context()).Error("artwork get failed", "error", err)
		response.Internal(w, "")
		return
	}
	response.Success(w, artwork)
}

// Create handles POST /api/artworks. The body is multipart form data with an
// "image" file part alongside the text fields.
func (c *ArtworkController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.UploadMaxBytes()); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	fields, errs := artworkFormFields(r, true)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	image, err := formImage(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	artwork, err := c.service.Create(fields, image)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingImage), errors.Is(err, services.ErrInvalidCategory):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("artwork create failed", "error", err)
			response.Internal(w, "Server error creating artwork")
		}
		return
	}
	response.Created(w, artwork)
}

// Update handles PUT /api/artworks/{id}. Only the submitted fields change;
// a new image replaces the stored one.
func (c *ArtworkController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(config.UploadMaxBytes()); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	fields, errs := artworkFormFields(r, false)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	image, err := formImage(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	artwork, err := c.service.Update(id, fields, image)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(w, "Artwork not found")
		case errors.Is(err, services.ErrInvalidCategory):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("artwork update failed", "error", err)
			response.Internal(w, "Server error updating artwork")
		}
		return
	}
	response.Success(w, artwork)
}

// Delete handles DELETE /api/artworks/{id}.
func (c *ArtworkController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(w, "Artwork not found")
			return
		}
		logger.WithCtx(r.Context()).Error("artwork delete failed", "error", err)
		response.Internal(w, "Server error deleting artwork")
		return
	}
	response.Message(w, "Artwork deleted")
}

// artworkFormFields collects the text fields from a parsed multipart form.
// With require set, missing title and price are validation errors.
func artworkFormFields(r *http.Request, require bool) (services.ArtworkFields, map[string]string) {
	var fields services.ArtworkFields
	errs := map[string]string{}

	if v, ok := formValue(r, "title"); ok {
		fields.Title = &v
	} else if require {
		errs["title"] = "The title field is required"
	}

	if v, ok := formValue(r, "description"); ok {
		fields.Description = &v
	} else if require {
		errs["description"] = "The description field is required"
	}

	if v, ok := formValue(r, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			errs["price"] = "The price must be a non-negative number"
		} else {
			fields.Price = &price
		}
	} else if require {
		errs["price"] = "The price field is required"
	}

	if v, ok := formValue(r, "category"); ok {
		fields.Category = &v
	}

	return fields, errs
}

func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals := r.MultipartForm.Value[key]
	if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
		return "", false
	}
	return strings.TrimSpace(vals[0]), true
}

// formImage reads the optional "image" part. A missing part returns (nil, nil)
// so the caller can decide whether an image is required.
func formImage(r *http.Request) (*services.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errors.New("Invalid image upload")
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return nil, errors.New("Only image files are allowed (jpeg, jpg, png, gif, webp)")
	}

	data, err := io.ReadAll(io.LimitReader(file, config.UploadMaxBytes()+1))
	if err != nil {
		return nil, errors.New("Failed to read image upload")
	}
	if int64(len(data)) > config.UploadMaxBytes() {
		return nil, errors.New("Image exceeds the maximum upload size")
	}

	return &services.ImageUpload{Data: data, Ext: ext}, nil
}

// parseID pulls the numeric {id} route parameter, writing the 404 itself when
// it is not a positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := router.Param(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.NotFound(w, "")
		return 0, false
	}
	return uint(id), true
}
