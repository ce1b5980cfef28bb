package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/coliride/backend/internal/repository"
)

const maxBodySize = 1 << 20 // 1MB

var validate = validator.New()

// FloatNumber accepts both a JSON number and its string form; clients are
// inconsistent about quoting weights, prices, and coordinates.
type FloatNumber float64

func (f *FloatNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*f = FloatNumber(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FloatNumber(v)
	return nil
}

func (f *FloatNumber) Ptr() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

// IntNumber is FloatNumber's integer counterpart (seat counts and the like).
type IntNumber int

func (i *IntNumber) UnmarshalJSON(data []byte) error {
	var f FloatNumber
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = IntNumber(f)
	return nil
}

func (i *IntNumber) Ptr() *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// readJSON decodes the body into dst and runs struct-tag validation.
// Validation failures come back as a slice of fieldError for the details
// section of the error response.
func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) ([]fieldError, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return nil, errors.New("invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]fieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			return details, errors.New("validation failed")
		}
		return nil, err
	}
	return nil, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "gt":
		return "value must be greater than " + fe.Param()
	default:
		return "invalid value"
	}
}

// listParamsFromRequest reads the shared collection query parameters.
// Malformed page/limit values fall back to the defaults rather than erroring.
func listParamsFromRequest(r *http.Request) repository.ListParams {
	q := r.URL.Query()
	p := repository.ListParams{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Role:   q.Get("role"),
		Page:   1,
		Limit:  10,
	}

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if s := q.Get("verified"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			p.Verified = &v
		}
	}
	if s := q.Get("read"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			p.Read = &v
		}
	}
	return p
}
