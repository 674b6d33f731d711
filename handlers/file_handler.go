package handlers

import (
	"net/http"
	"os"
)

// UploadFileHandler routes document uploads (IPVA/licenciamento PDFs,
// vehicle photos, maintenance invoices) to cloud or local storage. The
// returned URL is what clients store into link_doc_ipva,
// link_doc_licenciamento, fotos or anexos.
func UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != "" // Cloud Run indicator

	if useGCS {
		UploadFileGCS(w, r)
	} else {
		UploadFileLocal(w, r)
	}
}
