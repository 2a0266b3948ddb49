package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

func TestTogglePostLike(t *testing.T) {
	r, h := setupRouter()
	actor := entity.Actor{ID: "u1", Kind: entity.ActorKindUser}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/posts/p1/like", nil)
	req.Header.Set("Authorization", bearerFor(t, actor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
	assert.Equal(t, actor, h.like.LastActor)
	assert.Equal(t, "p1", h.like.LastTargetID)
}

func TestTogglePostLike_Unauthenticated(t *testing.T) {
	r, _ := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/posts/p1/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTogglePostLike_PostNotFound(t *testing.T) {
	r, h := setupRouter()
	h.like.ShouldFailTogglePostLike = true
	h.like.FailWith = contract.ErrPostNotFound
	actor := entity.Actor{ID: "u1", Kind: entity.ActorKindUser}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/posts/missing/like", nil)
	req.Header.Set("Authorization", bearerFor(t, actor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleCommentLike(t *testing.T) {
	r, h := setupRouter()
	actor := entity.Actor{ID: "s1", Kind: entity.ActorKindShop}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/comments/c1/like", nil)
	req.Header.Set("Authorization", bearerFor(t, actor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, actor, h.like.LastActor)
	assert.Equal(t, "c1", h.like.LastTargetID)
}

func TestToggleCommentLike_Fail(t *testing.T) {
	r, h := setupRouter()
	h.like.ShouldFailToggleCommentLike = true
	actor := entity.Actor{ID: "u1", Kind: entity.ActorKindUser}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/comments/c1/like", nil)
	req.Header.Set("Authorization", bearerFor(t, actor))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListPostLikers(t *testing.T) {
	r, h := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/posts/p1/likes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test User")
	assert.Equal(t, "p1", h.like.LastTargetID)
}

func TestListCommentLikers(t *testing.T) {
	r, h := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/comments/c1/likes?page=1&page_size=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", h.like.LastTargetID)
}

func TestListCommentLikers_NotFound(t *testing.T) {
	r, h := setupRouter()
	h.like.ShouldFailListCommentLikers = true
	h.like.FailWith = contract.ErrCommentNotFound

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/comments/missing/likes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
