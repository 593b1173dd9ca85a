package handler

import (
	"encoding/json"
	"errors"
)

// bindErrorMessage picks the validation message for a failed JSON
// bind. A field with the wrong type names that field instead of
// telling the caller to supply fields it already sent.
func bindErrorMessage(err error, missing string) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " has the wrong type"
	}
	return missing
}
