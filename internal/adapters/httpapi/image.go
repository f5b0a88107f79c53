package httpapi

import (
	"errors"
	"net/http"

	"github.com/ogurasousui/staff-directory/internal/core/notify"
	"github.com/ogurasousui/staff-directory/internal/dataurl"
)

type profileImageResponse struct {
	DataURI string `json:"dataUri"`
}

// encodeProfileImage はアップロードされた画像を data URI へ変換します。
// 5 MiB を超える画像は拒否します。
func (h *Handler) encodeProfileImage(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	uri, err := dataurl.Encode(file)
	if err != nil {
		if errors.Is(err, dataurl.ErrTooLarge) {
			h.notifier.Notify(notify.Notification{
				Title:       "Error",
				Description: "Image size should be less than 5MB",
				Variant:     notify.VariantDestructive,
			})
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileImageResponse{DataURI: uri})
}
