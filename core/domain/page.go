package domain

// Section is one titled block of marketing copy.
type Section struct {
	Heading string
	Body    string
}

// AboutPage is the static marketing page of the store.
type AboutPage struct {
	Title    string
	Tagline  string
	Sections []Section
	Contact  string
}

// AdminInfo lists the admin login shown on the admin-info page.
type AdminInfo struct {
	Email      string
	Password   string
	Configured bool
	LoginPath  string
}

// NewAdminInfo masks the password; it is never rendered in clear text.
func NewAdminInfo(email, password string) AdminInfo {
	info := AdminInfo{
		Email:     email,
		LoginPath: "/login",
	}
	if email == "" || password == "" {
		return info
	}
	info.Configured = true
	info.Password = maskSecret(password)
	return info
}

func maskSecret(s string) string {
	if len(s) <= 2 {
		return "**"
	}
	masked := make([]byte, len(s))
	masked[0] = s[0]
	for i := 1; i < len(s)-1; i++ {
		masked[i] = '*'
	}
	masked[len(s)-1] = s[len(s)-1]
	return string(masked)
}
