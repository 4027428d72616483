package entity

// Airline is created lazily the first time inventory names it.
type Airline struct {
	Base
	Name    string  `db:"name"` // unique
	LogoURL *string `db:"logo_url"`
}
