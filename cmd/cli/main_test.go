package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	origURL := baseURL
	baseURL = srv.URL
	t.Cleanup(func() { baseURL = origURL })
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestGenerateCmd(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/charges/charge-1/ledger" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"charge_id":"charge-1","reused":false,"entries":[]}`))
	})

	cmd := generateCmd()
	cmd.SetArgs([]string{"charge-1"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, `"charge_id": "charge-1"`) {
		t.Fatalf("output missing charge id:\n%s", out)
	}
}

func TestGenerateCmdReportsAPIError(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"ledger generation failed","message":"charge not found"}`))
	})

	cmd := generateCmd()
	cmd.SetArgs([]string{"missing"})
	cmd.SetErr(io.Discard)
	cmd.SetOut(io.Discard)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	if !strings.Contains(err.Error(), "charge not found") {
		t.Errorf("error should carry API message, got: %v", err)
	}
}

func TestValidateCmdFailsOnUnbalanced(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"charge_id":"charge-1","is_balanced":false,"unbalanced_entities":[]}`))
	})

	cmd := validateCmd()
	cmd.SetArgs([]string{"charge-1"})
	cmd.SetErr(io.Discard)
	cmd.SetOut(io.Discard)

	var err error
	captureOutput(t, func() {
		err = cmd.Execute()
	})

	if err == nil {
		t.Fatal("unbalanced charge should make the command fail")
	}
}

func TestBatchCmdCountsFailures(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ledger/batch" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results":[],"succeeded":1,"failed":1}`))
	})

	cmd := batchCmd()
	cmd.SetArgs([]string{"charge-1", "missing"})
	cmd.SetErr(io.Discard)
	cmd.SetOut(io.Discard)

	var err error
	captureOutput(t, func() {
		err = cmd.Execute()
	})

	if err == nil {
		t.Fatal("batch with failures should make the command fail")
	}

	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error should report failure count, got: %v", err)
	}
}
