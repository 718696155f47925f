package store_pages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorePagesUsecase_GetAboutPage(t *testing.T) {
	page := NewStorePagesUsecase("", "").GetAboutPage()

	require.Equal(t, "About Grocera", page.Title)
	require.NotEmpty(t, page.Tagline)
	require.Len(t, page.Sections, 3)
	for _, s := range page.Sections {
		require.NotEmpty(t, s.Heading)
		require.NotEmpty(t, s.Body)
	}
}

func TestStorePagesUsecase_GetAdminInfo(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		password       string
		wantConfigured bool
		wantPassword   string
	}{
		{
			name:           "configured admin",
			email:          "admin@grocera.example",
			password:       "admin123",
			wantConfigured: true,
			wantPassword:   "a******3",
		},
		{
			name:           "short password is fully masked",
			email:          "admin@grocera.example",
			password:       "ab",
			wantConfigured: true,
			wantPassword:   "**",
		},
		{
			name:  "missing password",
			email: "admin@grocera.example",
		},
		{
			name: "nothing configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewStorePagesUsecase(tt.email, tt.password).GetAdminInfo()

			require.Equal(t, tt.wantConfigured, info.Configured)
			require.Equal(t, tt.wantPassword, info.Password)
			require.Equal(t, tt.email, info.Email)
			require.NotContains(t, info.Password, "admin123")
		})
	}
}
