// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/globoquiz/assets"
	"github.com/danielhkuo/globoquiz/middleware"
	"github.com/danielhkuo/globoquiz/models"
)

type AssetHandler struct {
	resolver *assets.Resolver
}

func NewAssetHandler(resolver *assets.Resolver) *AssetHandler {
	return &AssetHandler{resolver: resolver}
}

// GetAsset handles GET /asset?name=sweden.svg
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	// Nothing is read from disk unless the name resolves inside the root
	f, info, err := h.resolver.Open(name)
	if err != nil {
		writeError(w, err, "open asset")
		return
	}
	defer f.Close()

	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// ListAssets handles GET /assets
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	names, err := h.resolver.List()
	if err != nil {
		writeError(w, err, "list assets")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssetListResponse{Assets: names})
}
