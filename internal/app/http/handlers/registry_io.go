package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/zarobax/ams-order-form/internal/domain/quote"
)

func (h *Handlers) ExportRegistry(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.Export()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="ams_customer_data.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ImportRegistry replaces the whole registry from an uploaded document.
// Accepts the document as a raw JSON body or as the first file of a
// multipart form.
func (h *Handlers) ImportRegistry(w http.ResponseWriter, r *http.Request) {
	data, err := importBody(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	count, err := h.Store.Import(r.Context(), data)
	if errors.Is(err, quote.ErrMalformedDocument) {
		http.Error(w, "Could not import file. Make sure it's a valid export from this app.", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"imported": count})
}

func importBody(r *http.Request) ([]byte, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return io.ReadAll(http.MaxBytesReader(nil, r.Body, 10<<20))
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}
	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			f.Close()
			return data, err
		}
	}
	return nil, errors.New("no file")
}
