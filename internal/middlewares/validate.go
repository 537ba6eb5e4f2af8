package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// bcrypt only hashes the first 72 bytes and rejects longer input.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(models.BlogUpdateRequest)
		if req.Title == nil && req.Description == nil {
			sl.ReportError(req.Title, "title", "Title", "atleastone", "")
		}
	}, models.BlogUpdateRequest{})

	return v
}

type bodyKey[T any] struct{}

// Validate decodes the JSON request body into T, checks its validate tags
// and stores the result in the request context.
func Validate[T any]() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T

			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&body); err != nil {
				response.Error(w, r, apperr.BadRequest(decodeMessage(err)))
				return
			}

			if err := validate.Struct(body); err != nil {
				response.Error(w, r, apperr.BadRequest(validationMessage(err)))
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey[T]{}, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyFromContext returns the body stored by Validate[T].
func BodyFromContext[T any](ctx context.Context) (T, bool) {
	body, ok := ctx.Value(bodyKey[T]{}).(T)
	return body, ok
}

func decodeMessage(err error) string {
	var (
		maxBytesErr *http.MaxBytesError
		typeErr     *json.UnmarshalTypeError
		syntaxErr   *json.SyntaxError
	)

	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &maxBytesErr):
		return fmt.Sprintf("request body must not be larger than %d bytes", maxBytesErr.Limit)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("'%s' must be a %s", typeErr.Field, typeErr.Type.Kind())
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "request body is not valid JSON"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return fmt.Sprintf("'%s' is not allowed", field)
	}
	return "invalid request body"
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ". ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "alphanum":
		return fmt.Sprintf("'%s' must only contain alpha-numeric characters", field)
	case "email":
		return fmt.Sprintf("'%s' must be a valid email", field)
	case "min":
		return fmt.Sprintf("'%s' length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("'%s' length must be less than or equal to %s characters long", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("'%s' must not be longer than %s bytes", field, fe.Param())
	case "atleastone":
		return "value must contain at least one of [title, description]"
	}
	return fmt.Sprintf("'%s' is invalid", field)
}
