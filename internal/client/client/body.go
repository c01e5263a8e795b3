package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"sort"
	"strconv"
)

// Body is a request payload. Use JSON or Multipart to build one.
type Body interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

// JSON sends v as application/json.
func JSON(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// query flattens the JSON form of v into URL query parameters. Arrays become
// repeated keys, nulls are skipped and nested objects are sent as JSON text.
func (b jsonBody) query() (url.Values, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.New("encode query: body must be a JSON object")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		switch v := fields[k].(type) {
		case nil:
		case []any:
			for _, item := range v {
				values.Add(k, queryValue(item))
			}
		default:
			values.Set(k, queryValue(v))
		}
	}
	return values, nil
}

func queryValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		data, _ := json.Marshal(value)
		return string(data)
	}
}

// FormFile is a file part of a multipart body.
type FormFile struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// MultipartForm is the content of a multipart/form-data body.
type MultipartForm struct {
	Fields map[string]string
	Files  []FormFile
}

type multipartBody struct {
	form MultipartForm
}

// Multipart sends form as multipart/form-data.
func Multipart(form MultipartForm) Body {
	return multipartBody{form: form}
}

func (b multipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(b.form.Fields))
	for k := range b.form.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, b.form.Fields[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	for _, f := range b.form.Files {
		part, err := createFormFile(w, f)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", f.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func createFormFile(w *multipart.Writer, f FormFile) (io.Writer, error) {
	if f.ContentType == "" {
		return w.CreateFormFile(f.Field, f.Name)
	}
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name)}
	h["Content-Type"] = []string{f.ContentType}
	return w.CreatePart(h)
}
