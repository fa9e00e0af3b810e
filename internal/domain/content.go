package domain

import "time"

// Consultation запрос на консультацию с формы сайта
type Consultation struct {
	ID              string
	Name            string
	Email           string
	Phone           *string
	ServiceInterest string
	Message         string
	CreatedAt       time.Time
}

// EmailLead подписка на рассылку (лид с формы захвата email)
type EmailLead struct {
	ID        string
	Email     string
	Name      *string
	Source    string // Откуда пришел лид: "guide_download", "waitlist_modal" и т.п.
	CreatedAt time.Time
}

// WaitlistEntry запись в листе ожидания направления
type WaitlistEntry struct {
	ID           string
	Email        string
	Name         *string
	Destination  *string
	TravelPeriod *string
	CreatedAt    time.Time
}

// Partner партнер, отображаемый в витрине на лендинге
type Partner struct {
	ID           string
	Name         string
	LogoURL      string
	Description  *string
	Website      *string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}

// Testimonial отзыв клиента
type Testimonial struct {
	ID        string
	Name      string
	Title     string
	Content   string
	Rating    int // 1..5
	ImageURL  *string
	IsActive  bool
	CreatedAt time.Time
}
