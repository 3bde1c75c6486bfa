package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/reelkit/reels-ms-go/internal/api_context"
	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/port"
	"github.com/reelkit/reels-ms-go/internal/validation"
)

type CreateVideoRequest struct {
	CreatorID    string  `json:"creator_id" validate:"required,max=64"`
	VideoURL     string  `json:"video_url" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Description  *string `json:"description"`
	AspectRatio  *string `json:"aspect_ratio" validate:"omitempty,max=16"`
	Duration     *int    `json:"duration" validate:"omitempty,gte=0"`
}

func CreateVideoHandler(svc port.VideoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		// An attached bearer token pins the write to its subject; without one
		// the request runs in service-role mode.
		if sub, ok := api_context.AuthUserIDFromContext(r.Context()); ok && sub != req.CreatorID {
			WriteError(w, http.StatusForbidden, "creator_id does not match the authenticated user", nil)
			return
		}

		in := port.CreateVideoInput{
			CreatorID:    req.CreatorID,
			VideoURL:     req.VideoURL,
			ThumbnailURL: req.ThumbnailURL,
			Description:  req.Description,
			AspectRatio:  req.AspectRatio,
			Duration:     req.Duration,
		}
		out, err := svc.CreateVideo(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create video record", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created video #%s", out.ID)
	}
}
