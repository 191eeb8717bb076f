package filedrop

import (
	"io"
	"log"
	"net/http"

	"gedo/filemgr"
	"gedo/utils"

	"github.com/julienschmidt/httprouter"
)

// maxUploadSize bounds the multipart form in memory.
const maxUploadSize = 10 << 20 // 10MB

// UploadHandler returns the authenticated image-intake handler. The
// response carries both the absolute URL and the canonical /media path;
// admin forms store the path.
func UploadHandler(store filemgr.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		filename := filemgr.MakeFilename(header.Filename)
		contentType := header.Header.Get("Content-Type")

		if err := store.Save(r.Context(), filename, file, contentType); err != nil {
			log.Printf("upload error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		url, path := store.PublicURL(filename)
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{
			"url":  url,
			"path": path,
		})
	}
}

// ServeBucketMedia streams /media/:filename from the bucket in production,
// where there is no local uploads directory to serve from.
func ServeBucketMedia(store *filemgr.BucketStore) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		name := utils.SanitizeFilename(ps.ByName("filename"))

		body, contentType, err := store.Open(r.Context(), name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer body.Close()

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if _, err := io.Copy(w, body); err != nil {
			log.Printf("media stream error for %s: %v", name, err)
		}
	}
}
