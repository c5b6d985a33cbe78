// Package http provides http transport for the text normalizer
package http

import (
	stdhttp "net/http"

	phttp "tweetsnlp/internal/platform/net/http"
	"tweetsnlp/internal/platform/net/http/bind"
	"tweetsnlp/internal/services/preprocess/domain"
)

// maxBody fits MaxPosts posts at the text size limit
const maxBody = 8 << 20

// Register mounts the preprocess endpoints on r
func Register(r phttp.Router, s domain.TextPort) {
	h := &handlers{svc: s}
	phttp.PostJSON(r, "/preprocess", h.preprocess, bind.JSONOptions{MaxBytes: maxBody})
	phttp.PostJSON(r, "/clean", h.clean)
	phttp.PostJSON(r, "/phrases", h.phrases)
}

type handlers struct{ svc domain.TextPort }

// @Summary Normalize a batch of posts
// @Tags Preprocess
// @Accept json
// @Produce json
// @Param payload body domain.PreprocessInput true "Posts"
// @Success 200 {object} domain.PreprocessOutput "ok"
// @Router /preprocess [post]
func (h *handlers) preprocess(r *stdhttp.Request, in domain.PreprocessInput) (any, error) {
	return h.svc.Preprocess(r.Context(), in)
}

// @Summary Apply the cleaning stages to one text
// @Tags Preprocess
// @Router /clean [post]
func (h *handlers) clean(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Clean(r.Context(), in)
}

// @Summary Split one text into normalized sentences
// @Tags Preprocess
// @Router /phrases [post]
func (h *handlers) phrases(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Phrases(r.Context(), in)
}
