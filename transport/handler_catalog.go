package transport

import (
	"net/http"

	"github.com/ShohjahonSohibov/Aberno/model"
)

// @Summary Create brand
// @Tags Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.NamedRequest true "Brand Request"
// @Success 201 {object} model.CreatedResponse[model.Brand]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/brands [post]
func (s *RestHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req model.NamedRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BrandApp.CreateBrand(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Brand", res)
}

// @Summary List brands
// @Tags Brands
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Success 200 {object} model.Page[model.Brand]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/brands [get]
func (s *RestHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BrandApp.ListBrands(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get brand
// @Tags Brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} model.Brand
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/brands/{id} [get]
func (s *RestHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	res, err := s.BrandApp.GetBrand(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update brand
// @Tags Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param request body model.NamedRequest true "Brand Request"
// @Success 200 {object} model.Brand
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/brands/{id} [put]
func (s *RestHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	var req model.NamedRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BrandApp.UpdateBrand(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete brand
// @Tags Brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/brands/{id} [delete]
func (s *RestHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := s.BrandApp.DeleteBrand(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Brand")
}

// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CategoryRequest true "Category Request"
// @Success 201 {object} model.CreatedResponse[model.Category]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CategoryApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Category", res)
}

// @Summary List categories
// @Tags Categories
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Param brand query string false "Comma-separated brand IDs"
// @Success 200 {object} model.Page[model.Category]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CategoryApp.ListCategories(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} model.Category
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/categories/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.GetCategory(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body model.CategoryRequest true "Category Request"
// @Success 200 {object} model.Category
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/categories/{id} [put]
func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CategoryApp.UpdateCategory(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/categories/{id} [delete]
func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.CategoryApp.DeleteCategory(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Category")
}

// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductRequest true "Product Request"
// @Success 201 {object} model.CreatedResponse[model.Product]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Product", res)
}

// @Summary List products
// @Tags Products
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Param category query string false "Comma-separated category IDs"
// @Param sortRate query string false "asc or desc"
// @Success 200 {object} model.Page[model.Product]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.GetProduct(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.ProductRequest true "Product Request"
// @Success 200 {object} model.Product
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.ProductApp.DeleteProduct(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Product")
}

// @Summary Create client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ClientRequest true "Client Request"
// @Success 201 {object} model.CreatedResponse[model.Client]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/clients [post]
func (s *RestHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req model.ClientRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ClientApp.CreateClient(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Client", res)
}

// @Summary List clients
// @Tags Clients
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Success 200 {object} model.Page[model.Client]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/clients [get]
func (s *RestHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ClientApp.ListClients(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} model.Client
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/clients/{id} [get]
func (s *RestHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	res, err := s.ClientApp.GetClient(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body model.ClientRequest true "Client Request"
// @Success 200 {object} model.Client
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/clients/{id} [put]
func (s *RestHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req model.ClientRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ClientApp.UpdateClient(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/clients/{id} [delete]
func (s *RestHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.ClientApp.DeleteClient(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Client")
}

// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TestimonialRequest true "Testimonial Request"
// @Success 201 {object} model.CreatedResponse[model.Testimonial]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/testimonials [post]
func (s *RestHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req model.TestimonialRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TestimonialApp.CreateTestimonial(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "Testimonial", res)
}

// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Param isActive query bool false "Active flag"
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Param sortByCreatedAt query string false "asc or desc"
// @Param sortRate query string false "asc or desc"
// @Success 200 {object} model.Page[model.Testimonial]
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/testimonials [get]
func (s *RestHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TestimonialApp.ListTestimonials(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Get testimonial
// @Tags Testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/testimonials/{id} [get]
func (s *RestHandler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	res, err := s.TestimonialApp.GetTestimonial(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param request body model.TestimonialRequest true "Testimonial Request"
// @Success 200 {object} model.Testimonial
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/testimonials/{id} [put]
func (s *RestHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req model.TestimonialRequest
	if err := bind(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TestimonialApp.UpdateTestimonial(r.Context(), pathID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Delete testimonial
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/testimonials/{id} [delete]
func (s *RestHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := s.TestimonialApp.DeleteTestimonial(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeDeleted(w, "Testimonial")
}

// @Summary List active brands with their categories
// @Tags Brands
// @Produce json
// @Param search query string false "Case-insensitive search"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} model.Page[model.BrandWithCategories]
// @Router /api/v1/brands/filter [get]
func (s *RestHandler) FilterBrands(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BrandApp.ListBrandsWithCategories(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
