package utils

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/tecaikids/website/internal/models"
)

func GenerateID() string {
	return uuid.NewString()
}

// WriteJSONResponse writes the standard APIResponse envelope.
func WriteJSONResponse(w http.ResponseWriter, status int, success bool, message string, data interface{}, errDetail interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Success: success,
		Message: message,
		Data:    data,
		Error:   errDetail,
	})
}
