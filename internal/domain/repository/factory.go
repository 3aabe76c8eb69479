package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Orders() OrderRepository
	Settings() SettingsRepository
	FAQs() FAQRepository
	Testimonials() TestimonialRepository
}
