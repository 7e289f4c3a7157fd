package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"clubfund/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitForm(router *gin.Engine, fields map[string]string, fileField, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if fileField != "" {
		fw, _ := mw.CreateFormFile(fileField, fileName)
		fw.Write(fileContent)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/submissions", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validSubmission() map[string]string {
	return map[string]string{
		"full_name":      "Rahim Uddin",
		"mobile_number":  "01712345678",
		"amount":         "500.0",
		"transaction_id": "TX12345",
		"payment_method": "bKash",
	}
}

func TestSubmissionHandler_Submit(t *testing.T) {
	cfg := newTestConfig(t)
	_, _, _, submissions := newTestServices()
	h := NewSubmissionHandler(cfg, submissions)

	router := gin.New()
	router.POST("/submissions", h.Submit)

	w := submitForm(router, validSubmission(), "", "", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	pending, err := submissions.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Rahim Uddin", pending[0].FullName)
	assert.Equal(t, models.StatusPending, pending[0].Status)
	assert.Nil(t, pending[0].Screenshot)
}

func TestSubmissionHandler_SubmitWithScreenshot(t *testing.T) {
	cfg := newTestConfig(t)
	_, _, _, submissions := newTestServices()
	h := NewSubmissionHandler(cfg, submissions)

	router := gin.New()
	router.POST("/submissions", h.Submit)

	w := submitForm(router, validSubmission(), "screenshot", "receipt.png", []byte("fake png"))
	require.Equal(t, 200, w.Code)

	pending, err := submissions.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Screenshot)

	// stored under the upload dir with a randomized prefix
	name := *pending[0].Screenshot
	assert.NotEqual(t, "receipt.png", name)
	assert.Contains(t, name, "_receipt.png")
	_, err = os.Stat(filepath.Join(cfg.Upload.Dir, name))
	assert.NoError(t, err)
}

func TestSubmissionHandler_SubmitRejectsBadInput(t *testing.T) {
	cfg := newTestConfig(t)
	_, _, _, submissions := newTestServices()
	h := NewSubmissionHandler(cfg, submissions)

	router := gin.New()
	router.POST("/submissions", h.Submit)

	// unsupported payment method for submissions
	fields := validSubmission()
	fields["payment_method"] = "Cash"
	w := submitForm(router, fields, "", "", nil)
	assert.Equal(t, 400, w.Code)

	// malformed amount
	fields = validSubmission()
	fields["amount"] = "lots"
	w = submitForm(router, fields, "", "", nil)
	assert.Equal(t, 400, w.Code)

	// mobile number too short
	fields = validSubmission()
	fields["mobile_number"] = "12345"
	w = submitForm(router, fields, "", "", nil)
	assert.Equal(t, 400, w.Code)

	// screenshot with a non-image extension
	w = submitForm(router, validSubmission(), "screenshot", "malware.exe", []byte("nope"))
	assert.Equal(t, 400, w.Code)

	pending, err := submissions.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSubmissionHandler_ApproveAndReject(t *testing.T) {
	cfg := newTestConfig(t)
	_, _, ledger, submissions := newTestServices()
	h := NewSubmissionHandler(cfg, submissions)

	router := gin.New()
	router.POST("/submissions", h.Submit)
	router.GET("/submissions/pending", asAdmin(), h.ListPending)
	router.POST("/submissions/:id/approve", asAdmin(), h.Approve)
	router.POST("/submissions/:id/reject", asAdmin(), h.Reject)

	require.Equal(t, 200, submitForm(router, validSubmission(), "", "", nil).Code)

	// approve mirrors the submission into the funds collection
	req := httptest.NewRequest("POST", "/submissions/1/approve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "approved and added to funds")

	funds, err := ledger.ListFunds()
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.Equal(t, "Rahim Uddin", funds[0].Name)

	// nothing left pending
	req = httptest.NewRequest("GET", "/submissions/pending", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)

	// unknown ids answer 404 and leave the ledger alone
	req = httptest.NewRequest("POST", "/submissions/42/reject", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)

	req = httptest.NewRequest("POST", "/submissions/abc/approve", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)

	funds, err = ledger.ListFunds()
	require.NoError(t, err)
	assert.Len(t, funds, 1)
}
