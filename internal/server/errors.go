package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxRequestBodyBytes bounds request bodies; résumés and postings are text
// and should stay well under this.
const maxRequestBodyBytes = 2 << 20 // 2 MiB

// ErrRequestTooLarge indicates the request body exceeded the size limit
type ErrRequestTooLarge struct{}

func (e *ErrRequestTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", maxRequestBodyBytes)
}

// ErrEmptyBody indicates the request carried no body
type ErrEmptyBody struct{}

func (e *ErrEmptyBody) Error() string {
	return "request body is empty"
}

// decodeJSON decodes a bounded JSON request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrEmptyBody{}
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &ErrRequestTooLarge{}
		}
		return err
	}
	return nil
}
