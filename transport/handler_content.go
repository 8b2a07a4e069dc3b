package transport

import (
	"net/http"

	"github.com/ShohjahonSohibov/Aberno/model"
)

// @Summary Create post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PostRequest true "Post Request"
// @Success 201 {object} model.CreatedResponse[model.Post]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/posts [post]
func (s *RestHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req model.PostRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.CreatePost(r.Context(), callerID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Post", res)
}

// @Summary List posts
// @Tags Posts
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Param status query string false "draft, published or scheduled"
// @Param author query string false "Comma-separated author IDs"
// @Param category query string false "Comma-separated post category IDs"
// @Param tag query string false "Comma-separated tag IDs"
// @Param brand query string false "Comma-separated brand IDs"
// @Param publishedStartTime query string false "RFC3339 or YYYY-MM-DD"
// @Param publishedEndTime query string false "RFC3339 or YYYY-MM-DD"
// @Param scheduledStartTime query string false "RFC3339 or YYYY-MM-DD"
// @Param scheduledEndTime query string false "RFC3339 or YYYY-MM-DD"
// @Success 200 {object} model.Page[model.Post]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/posts [get]
func (s *RestHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.ListPosts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/posts/{id} [get]
func (s *RestHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	res, err := s.PostApp.GetPost(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body model.PostRequest true "Post Request"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/posts/{id} [put]
func (s *RestHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req model.PostRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.UpdatePost(r.Context(), callerID(r), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/posts/{id} [delete]
func (s *RestHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.PostApp.DeletePost(r.Context(), callerID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Post")
}

// @Summary Create post category
// @Tags PostCategories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.NamedRequest true "PostCategory Request"
// @Success 201 {object} model.CreatedResponse[model.PostCategory]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/post-categories [post]
func (s *RestHandler) CreatePostCategory(w http.ResponseWriter, r *http.Request) {
	var req model.NamedRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostCategoryApp.CreatePostCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Post category", res)
}

// @Summary List post categories
// @Tags PostCategories
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Success 200 {object} model.Page[model.PostCategory]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/post-categories [get]
func (s *RestHandler) ListPostCategories(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostCategoryApp.ListPostCategories(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get post category
// @Tags PostCategories
// @Produce json
// @Param id path string true "PostCategory ID"
// @Success 200 {object} model.PostCategory
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/post-categories/{id} [get]
func (s *RestHandler) GetPostCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.PostCategoryApp.GetPostCategory(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update post category
// @Tags PostCategories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "PostCategory ID"
// @Param request body model.NamedRequest true "PostCategory Request"
// @Success 200 {object} model.PostCategory
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/post-categories/{id} [put]
func (s *RestHandler) UpdatePostCategory(w http.ResponseWriter, r *http.Request) {
	var req model.NamedRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostCategoryApp.UpdatePostCategory(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete post category
// @Tags PostCategories
// @Produce json
// @Security BearerAuth
// @Param id path string true "PostCategory ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/post-categories/{id} [delete]
func (s *RestHandler) DeletePostCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.PostCategoryApp.DeletePostCategory(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Post category")
}

// @Summary Create tag
// @Tags Tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.NamedRequest true "Tag Request"
// @Success 201 {object} model.CreatedResponse[model.Tag]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/tags [post]
func (s *RestHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req model.NamedRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TagApp.CreateTag(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Tag", res)
}

// @Summary List tags
// @Tags Tags
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Success 200 {object} model.Page[model.Tag]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/tags [get]
func (s *RestHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TagApp.ListTags(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get tag
// @Tags Tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} model.Tag
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/tags/{id} [get]
func (s *RestHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	res, err := s.TagApp.GetTag(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update tag
// @Tags Tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Param request body model.NamedRequest true "Tag Request"
// @Success 200 {object} model.Tag
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/tags/{id} [put]
func (s *RestHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var req model.NamedRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TagApp.UpdateTag(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete tag
// @Tags Tags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/tags/{id} [delete]
func (s *RestHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.TagApp.DeleteTag(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Tag")
}

// @Summary Create comment
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CommentRequest true "Comment Request"
// @Success 201 {object} model.CreatedResponse[model.Comment]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/comments [post]
func (s *RestHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req model.CommentRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CommentApp.CreateComment(r.Context(), callerID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Comment", res)
}

// @Summary List comments
// @Tags Comments
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Param postId query string false "Post ID"
// @Param productId query string false "Product ID"
// @Param sortRate query string false "asc or desc"
// @Success 200 {object} model.Page[model.Comment]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/comments [get]
func (s *RestHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CommentApp.ListComments(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get comment
// @Tags Comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} model.Comment
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/comments/{id} [get]
func (s *RestHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	res, err := s.CommentApp.GetComment(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update comment
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body model.UpdateCommentRequest true "Comment Request"
// @Success 200 {object} model.Comment
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/comments/{id} [put]
func (s *RestHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCommentRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CommentApp.UpdateComment(r.Context(), callerID(r), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete comment
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/comments/{id} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.CommentApp.DeleteComment(r.Context(), callerID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Comment")
}
