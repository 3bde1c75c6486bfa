package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/port"
	"github.com/reelkit/reels-ms-go/internal/validation"
)

type UploadSlotRequest struct {
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,max=100"`
}

func UploadSlotHandler(svc port.UploadSlotGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UploadSlotRequest
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

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.GenerateUploadSlotInput(req)
		out, err := svc.GenerateUploadSlot(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not generate upload slot", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully generated upload slot for object %q", out.Path)
	}
}
