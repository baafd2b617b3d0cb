package uploads

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gatherly/internal/shared/config"
	"gatherly/internal/shared/utils/response"
	"gatherly/pkg/logger"
)

// allowedExtensions whitelists what the event image picker accepts.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

type Controller interface {
	UploadImage(c *gin.Context)
}

type controller struct {
	cfg config.UploadConfig
	log *logger.Logger
}

func NewController(cfg config.UploadConfig, log *logger.Logger) Controller {
	return &controller{cfg: cfg, log: log}
}

// UploadImage stores a multipart image under a random name and returns
// the public URL. Size is capped by cfg.MaxSize (2 MB by default).
func (ctrl *controller) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "No file provided", nil, err.Error())
		return
	}

	if file.Size > ctrl.cfg.MaxSize {
		response.RespondJSON(c, "error", http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Image exceeds the %d MB limit", ctrl.cfg.MaxSize/(1024*1024)), nil, nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Unsupported image type", nil, nil)
		return
	}

	if err := os.MkdirAll(ctrl.cfg.Path, 0o755); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to store image", nil, err.Error())
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(ctrl.cfg.Path, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to store image", nil, err.Error())
		return
	}

	url := strings.TrimRight(ctrl.cfg.BaseURL, "/") + "/" + name
	ctrl.log.Info("image uploaded", "file", name, "size", file.Size)

	response.RespondJSON(c, "success", http.StatusCreated, "Image uploaded successfully", gin.H{
		"file_url": url,
		"filename": name,
	}, nil)
}
