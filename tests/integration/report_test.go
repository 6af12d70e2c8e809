package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/stretchr/testify/require"
)

func TestFormDefinitions(t *testing.T) {
	token := loginUser(t, "alice", "123456")

	resp := doRequest(t, "GET", "/form-definitions", token, nil, http.StatusOK)
	var defs []struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &defs))
	require.Len(t, defs, 5)
	require.Equal(t, "serviceApproval", defs[0].Key)

	doRequest(t, "GET", "/form-definitions/riskAssessment", token, nil, http.StatusOK)
	doRequest(t, "GET", "/form-definitions/nope", token, nil, http.StatusNotFound)

	// schema editing is admin only
	doRequest(t, "PUT", "/form-definitions/riskAssessment", token,
		map[string]interface{}{"label": "Renamed"}, http.StatusForbidden)
}

func TestReports(t *testing.T) {
	admin := loginUser(t, "root", "123456")

	createProject(t, admin, "Report Vendor")

	resp := doRequest(t, "GET", "/reports/status-summary", admin, nil, http.StatusOK)
	var summary struct {
		Total  int            `json:"total"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summary))
	require.Greater(t, summary.Total, 0)
	require.Greater(t, summary.Counts["Not Started"], 0)

	resp = doRequest(t, "GET", "/reports/doughnut", admin, nil, http.StatusOK)
	var segments []struct {
		Status string  `json:"status"`
		From   float64 `json:"from_deg"`
		To     float64 `json:"to_deg"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &segments))
	require.NotEmpty(t, segments)
	require.InDelta(t, 360.0, segments[len(segments)-1].To, 1e-6)

	resp = doRequest(t, "GET", "/reports/workflow-steps", admin, nil, http.StatusOK)
	var steps []struct {
		FormKey string `json:"form_key"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &steps))
	require.Len(t, steps, 5)
	require.Equal(t, "serviceApproval", steps[0].FormKey)

	doRequest(t, "GET", "/reports/projects/999999", admin, nil, http.StatusNotFound)
}

func TestSurveys(t *testing.T) {
	admin := loginUser(t, "root", "123456")
	assessor := loginUser(t, "alice", "123456")

	pid := createProject(t, admin, "Survey Vendor")

	resp := doRequest(t, "POST", "/surveys", assessor, map[string]interface{}{
		"project_id": pid,
		"rating":     4,
		"data":       map[string]interface{}{"wouldRecommend": true},
	}, http.StatusCreated)

	var created struct {
		ID         uint   `json:"ss_id"`
		Respondent string `json:"respondent"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.Equal(t, "alice", created.Respondent)

	// out-of-range ratings never land
	doRequest(t, "POST", "/surveys", assessor, map[string]interface{}{
		"project_id": pid, "rating": 6,
	}, http.StatusBadRequest)
	doRequest(t, "POST", "/surveys", assessor, map[string]interface{}{
		"project_id": 999999, "rating": 3,
	}, http.StatusNotFound)

	resp = doRequest(t, "GET", urlf("/projects/%d/surveys", pid), assessor, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "alice")

	// deletion is admin only
	doRequest(t, "DELETE", urlf("/surveys/%d", created.ID), assessor, nil, http.StatusForbidden)
	doRequest(t, "DELETE", urlf("/surveys/%d", created.ID), admin, nil, http.StatusOK)
}

func TestImportPreview(t *testing.T) {
	admin := loginUser(t, "root", "123456")
	assessor := loginUser(t, "alice", "123456")

	csv := "username,password,nickname\ncarol,secret123,caz\n"

	resp := doImportRequest(t, admin, "/imports/users", csv, http.StatusOK)
	var preview application.ImportPreview
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &preview))
	require.Len(t, preview.Rows, 1)
	require.Len(t, preview.Warnings, 1)
	require.Contains(t, preview.Warnings[0], "nickname")

	doImportRequest(t, admin, "/imports/vendors", csv, http.StatusNotFound)
	doImportRequest(t, assessor, "/imports/users", csv, http.StatusForbidden)
}

func TestAuditLogs(t *testing.T) {
	admin := loginUser(t, "root", "123456")
	assessor := loginUser(t, "alice", "123456")

	doRequest(t, "GET", "/audit/logs", assessor, nil, http.StatusForbidden)
	doRequest(t, "GET", "/audit/logs?start_time=bogus", admin, nil, http.StatusBadRequest)

	resp := doRequest(t, "GET", "/audit/logs?limit=10", admin, nil, http.StatusOK)
	var logs []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &logs))
}

func doImportRequest(t *testing.T, token, path, csv string, expectStatus int) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "import.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectStatus, w.Code, "body=%s", w.Body.String())
	return w
}
