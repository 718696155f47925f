package store_pages

import "github.com/ksdhruvateja/grocera-sub002/core/domain"

// StorePagesUsecase serves the static content pages of the storefront
type StorePagesUsecase struct {
	adminEmail    string
	adminPassword string
}

// NewStorePagesUsecase creates a new instance of the usecase
func NewStorePagesUsecase(adminEmail, adminPassword string) *StorePagesUsecase {
	return &StorePagesUsecase{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// GetAboutPage returns the marketing copy for the about page
func (u *StorePagesUsecase) GetAboutPage() domain.AboutPage {
	return domain.AboutPage{
		Title:   "About Grocera",
		Tagline: "Fresh groceries delivered to your door",
		Sections: []domain.Section{
			{
				Heading: "Our Story",
				Body:    "We started with a simple idea: shopping for groceries should take minutes, not hours. Today we partner with local farms and stores to bring fresh produce, pantry staples and household essentials straight to your home.",
			},
			{
				Heading: "Our Mission",
				Body:    "To make healthy, affordable food accessible to every household by combining local sourcing with fast, reliable delivery.",
			},
			{
				Heading: "Why Choose Us",
				Body:    "Same-day delivery, hand-picked produce, secure online payments and a support team that answers every message.",
			},
		},
		Contact: "support@grocera.example",
	}
}

// GetAdminInfo returns the admin login shown on the admin-info page
func (u *StorePagesUsecase) GetAdminInfo() domain.AdminInfo {
	return domain.NewAdminInfo(u.adminEmail, u.adminPassword)
}
