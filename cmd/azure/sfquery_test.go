package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestQueryHandlerReturnsDocuments(t *testing.T) {
	cluster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Nodes" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = io.WriteString(w, `{"Items":[{"Name":"_Node_0"}]}`)
	}))
	defer cluster.Close()

	body := `{"url": "` + cluster.URL + `", "queries": ["nodes"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sfquery", strings.NewReader(body))
	res := httptest.NewRecorder()

	queryHandler(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", res.Code, res.Body.String())
	}

	documents := map[string]json.RawMessage{}
	if err := json.Unmarshal(res.Body.Bytes(), &documents); err != nil {
		t.Fatalf("Response should have been JSON: %v", err)
	}

	if _, ok := documents["nodes.json"]; !ok {
		t.Fatalf("Response should have included nodes.json")
	}

	if _, ok := documents["index.json"]; !ok {
		t.Fatalf("Response should have included index.json")
	}
}

func TestQueryHandlerRequiresUrl(t *testing.T) {
	t.Setenv("SF_CLUSTER_ENDPOINT", "")

	req := httptest.NewRequest(http.MethodPost, "/api/sfquery", strings.NewReader(`{"queries": ["nodes"]}`))
	res := httptest.NewRecorder()

	queryHandler(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", res.Code)
	}
}
