package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"researcher-api/internal/logic"
	"researcher-api/internal/repo"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeStoreError maps selection store errors onto status codes.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteJsonCtx(r.Context(), w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, logic.ErrStoreDisabled):
		httpx.WriteJsonCtx(r.Context(), w, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	default:
		httpx.WriteJsonCtx(r.Context(), w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}
