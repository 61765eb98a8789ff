package httpclient

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
)

// MultipartBody represents a multipart/form-data request body.
// Pass this as the Body field of a Request to automatically construct
// multipart encoding with the correct Content-Type header.
type MultipartBody struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload fields.
	Files []FileField
}

// FileField represents a file to upload in a multipart request. It is the
// minimal file-like capability this package depends on: a readable byte
// source, a declared content type, and a filename.
type FileField struct {
	// FieldName is the form field name (e.g., "files", "audio").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. If empty, application/octet-stream is used.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for large files.
	Reader io.Reader
}

// FilesBody builds the canonical upload body: one text field named "path"
// carrying the given string (possibly empty), plus one part named "files"
// per input file, each preserving its filename and declared content type.
func FilesBody(path string, files []FileField) *MultipartBody {
	mp := &MultipartBody{
		Fields: map[string]string{"path": path},
	}
	for _, f := range files {
		f.FieldName = "files"
		if f.ContentType == "" {
			f.ContentType = "application/octet-stream"
		}
		mp.Files = append(mp.Files, f)
	}
	return mp
}

// encode builds the multipart body and returns the reader and content-type header.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	for _, f := range m.Files {
		var part io.Writer
		var err error

		if f.ContentType != "" {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition",
				`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
			header.Set("Content-Type", f.ContentType)
			part, err = w.CreatePart(header)
		} else {
			part, err = w.CreateFormFile(f.FieldName, f.FileName)
		}
		if err != nil {
			return nil, "", err
		}

		if f.Data != nil {
			if _, err := part.Write(f.Data); err != nil {
				return nil, "", err
			}
		} else if f.Reader != nil {
			if _, err := io.Copy(part, f.Reader); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
