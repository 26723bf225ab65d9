// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/globoquiz/assets"
	"github.com/danielhkuo/globoquiz/models"
	"github.com/danielhkuo/globoquiz/testutil"
)

func getAsset(h *AssetHandler, name string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.GetAsset(w, testutil.MakeRequest("GET", "/asset?name="+url.QueryEscape(name), nil))
	return w
}

func TestGetAsset(t *testing.T) {
	root := testutil.SetupAssetDir(t)
	h := NewAssetHandler(assets.New(root))

	w := getAsset(h, "sweden.svg")
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Expected Content-Type image/svg+xml, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "#006aa7") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestGetAsset_Rejections(t *testing.T) {
	root := testutil.SetupAssetDir(t)

	// A symlink inside the root that points at the secret beside it
	if err := os.Symlink(filepath.Join(filepath.Dir(root), "secret.txt"), filepath.Join(root, "innocent.svg")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	h := NewAssetHandler(assets.New(root))

	testCases := []struct {
		name     string
		asset    string
		expected int
	}{
		{"parent traversal", "../secret.txt", http.StatusForbidden},
		{"deep traversal", "../../../../etc/passwd", http.StatusForbidden},
		{"sibling directory prefix", "../flags-other", http.StatusForbidden},
		{"absolute path", filepath.Join(filepath.Dir(root), "secret.txt"), http.StatusForbidden},
		{"symlink out of root", "innocent.svg", http.StatusForbidden},
		{"missing file", "atlantis.svg", http.StatusNotFound},
		{"empty name", "", http.StatusBadRequest},
		{"root itself", ".", http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := getAsset(h, tc.asset)
			testutil.AssertStatus(t, w, tc.expected)

			if strings.Contains(w.Body.String(), testutil.SecretFileContent) {
				t.Fatal("Response leaked content from outside the asset directory")
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected JSON error body, got Content-Type %q", ct)
			}
		})
	}
}

func TestListAssets(t *testing.T) {
	root := testutil.SetupAssetDir(t)
	if err := os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewAssetHandler(assets.New(root))

	w := httptest.NewRecorder()
	h.ListAssets(w, testutil.MakeRequest("GET", "/assets", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AssetListResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Assets) != 2 || resp.Assets[0] != "norway.svg" || resp.Assets[1] != "sweden.svg" {
		t.Errorf("Expected [norway.svg sweden.svg], got %v", resp.Assets)
	}
}

func TestListAssets_MissingDir(t *testing.T) {
	h := NewAssetHandler(assets.New(filepath.Join(t.TempDir(), "nope")))

	w := httptest.NewRecorder()
	h.ListAssets(w, testutil.MakeRequest("GET", "/assets", nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
