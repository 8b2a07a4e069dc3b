package model

// Brand represents the brands table entity
type Brand struct {
	ID       string        `db:"id" json:"_id"`
	Name     LocalizedText `db:"name" json:"name"`
	IsActive bool          `db:"is_active" json:"isActive"`
	Timestamps
}

// BrandWithCategories is a brand together with its active categories.
type BrandWithCategories struct {
	Brand
	Categories []Ref `json:"categories"`
}

type Category struct {
	ID       string        `db:"id" json:"_id"`
	Name     LocalizedText `db:"name" json:"name"`
	BrandID  string        `db:"brand_id" json:"-"`
	Brand    *Ref          `db:"-" json:"brand"`
	IsActive bool          `db:"is_active" json:"isActive"`
	Timestamps
}

type Product struct {
	ID               string        `db:"id" json:"_id"`
	Title            LocalizedText `db:"title" json:"title"`
	ShortDescription LocalizedText `db:"short_description" json:"short_description"`
	Description      LocalizedText `db:"description" json:"description"`
	Image            string        `db:"image" json:"image"`
	CategoryID       string        `db:"category_id" json:"-"`
	Category         *Ref          `db:"-" json:"category"`
	Rate             float64       `db:"rate" json:"rate"`
	IsActive         bool          `db:"is_active" json:"isActive"`
	Timestamps
}

// PostCategory and Tag share the named-document shape.
type PostCategory struct {
	ID       string        `db:"id" json:"_id"`
	Name     LocalizedText `db:"name" json:"name"`
	IsActive bool          `db:"is_active" json:"isActive"`
	Timestamps
}

type Tag struct {
	ID       string        `db:"id" json:"_id"`
	Name     LocalizedText `db:"name" json:"name"`
	IsActive bool          `db:"is_active" json:"isActive"`
	Timestamps
}

type Client struct {
	ID       string        `db:"id" json:"_id"`
	Name     LocalizedText `db:"name" json:"name"`
	Image    string        `db:"image" json:"image"`
	BrandID  string        `db:"brand_id" json:"-"`
	Brand    *Ref          `db:"-" json:"brand"`
	IsActive bool          `db:"is_active" json:"isActive"`
	Timestamps
}

type Testimonial struct {
	ID       string        `db:"id" json:"_id"`
	Fullname LocalizedText `db:"fullname" json:"fullname"`
	Title    LocalizedText `db:"title" json:"title"`
	Content  LocalizedText `db:"content" json:"content"`
	Image    string        `db:"image" json:"image"`
	Rate     float64       `db:"rate" json:"rate"`
	IsActive bool          `db:"is_active" json:"isActive"`
	Timestamps
}

// NamedRequest creates or updates a brand, post category or tag.
type NamedRequest struct {
	Name     LocalizedText `json:"name"`
	IsActive *bool         `json:"isActive"`
}

type CategoryRequest struct {
	Name     LocalizedText `json:"name"`
	Brand    string        `json:"brand"`
	IsActive *bool         `json:"isActive"`
}

type ProductRequest struct {
	Title            LocalizedText `json:"title"`
	ShortDescription LocalizedText `json:"short_description"`
	Description      LocalizedText `json:"description"`
	Image            string        `json:"image"`
	Category         string        `json:"category"`
	Rate             *float64      `json:"rate" validate:"omitempty,gte=0,lte=5"`
	IsActive         *bool         `json:"isActive"`
}

type ClientRequest struct {
	Name     LocalizedText `json:"name"`
	Image    string        `json:"image"`
	Brand    string        `json:"brand"`
	IsActive *bool         `json:"isActive"`
}

type TestimonialRequest struct {
	Fullname LocalizedText `json:"fullname"`
	Title    LocalizedText `json:"title"`
	Content  LocalizedText `json:"content"`
	Image    string        `json:"image"`
	Rate     *float64      `json:"rate" validate:"omitempty,gte=0,lte=5"`
	IsActive *bool         `json:"isActive"`
}
