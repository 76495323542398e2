package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		Logger.WithError(err).Error("failed to encode response")
	}
}

// Validate checks the `validate` tags of a request DTO.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ValidationError writes a 400 describing which fields failed which rule.
func ValidationError(w http.ResponseWriter, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		fields[key] = fe.Tag()
	}

	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "validation failed",
		"errors":  fields,
	})
}
