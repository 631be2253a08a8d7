package pkg

import (
	"encoding/json"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// DecodeAndValidate reads a JSON body into v and runs tag validation on it.
func DecodeAndValidate(r *http.Request, v any) error {
	if r.Body == nil {
		return NewInvalidInputError("request body is required")
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		if err == io.EOF {
			return NewInvalidInputError("request body is required")
		}
		return NewInvalidInputError("invalid request body: " + err.Error())
	}
	return Validate(v)
}
