package domain

// PartnerUpdate частичное обновление партнера
// nil-поля не изменяются
type PartnerUpdate struct {
	Name         *string
	LogoURL      *string
	Description  *string
	Website      *string
	DisplayOrder *int
	IsActive     *bool
}

// TestimonialUpdate частичное обновление отзыва
// nil-поля не изменяются
type TestimonialUpdate struct {
	Name     *string
	Title    *string
	Content  *string
	Rating   *int
	ImageURL *string
	IsActive *bool
}
