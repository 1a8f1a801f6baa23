package domain

// SiteContent is the single editable content record behind the marketing
// pages. It is stored as one JSON document; the frontend renders it as-is.
type SiteContent struct {
	SiteName string           `json:"site_name"`
	Hero     Hero             `json:"hero"`
	Services []ServicePackage `json:"services"`
	About    About            `json:"about"`
	Contact  Contact          `json:"contact"`
}

type Hero struct {
	BackgroundImage string `json:"background_image"`
	Heading         string `json:"heading"`
	Subheading      string `json:"subheading"`
}

type ServicePackage struct {
	ID              string   `json:"id"`
	Badge           string   `json:"badge"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	DurationMinutes int      `json:"duration_minutes"`
}

type About struct {
	Heading    string `json:"heading"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
}

type Contact struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	WeekdayHours  string `json:"weekday_hours"`
	SaturdayHours string `json:"saturday_hours"`
	SundayHours   string `json:"sunday_hours"`
}

// DefaultSiteContent is what the site shows before the owner has saved
// anything.
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		SiteName: "Gloss & Go Mobile Detailing",
		Hero: Hero{
			Heading:    "Gloss & Go Mobile Detailing",
			Subheading: "Professional mobile detailing that restores your vehicle's shine, wherever you are",
		},
		Services: []ServicePackage{
			{
				ID:          "interior",
				Badge:       "Interior Only",
				Title:       "Interior Only",
				Price:       169.99,
				Description: "Complete interior detailing service",
				Features: []string{
					"Vacuum carpets, mats, seats and trunk",
					"Clean and polish dash, console, door panels",
					"Clean interior and exterior windows",
				},
				DurationMinutes: 180,
			},
			{
				ID:          "exterior",
				Badge:       "Exterior Only",
				Title:       "Exterior Only",
				Price:       159.99,
				Description: "Professional exterior detailing service",
				Features: []string{
					"Hand wash and dry",
					"Clay bar contaminant removal",
					"Clean and dress wheels and tires",
					"Polish and hand wax",
				},
				DurationMinutes: 180,
			},
			{
				ID:          "gold",
				Badge:       "Value",
				Title:       "Gold Package",
				Price:       189.99,
				Description: "Quick professional detail inside and out",
				Features: []string{
					"Hand wash and dry",
					"Quick interior vacuum",
					"Wipe down door panels and dash",
					"Spray wax",
				},
				DurationMinutes: 150,
			},
			{
				ID:          "platinum",
				Badge:       "Popular",
				Title:       "Platinum Package",
				Price:       229.99,
				Description: "Comprehensive detail service",
				Features: []string{
					"Hand wash and dry",
					"Full interior vacuum",
					"Clean and polish door panels",
					"Spray wax or ceramic spray wax",
				},
				DurationMinutes: 180,
			},
			{
				ID:          "full",
				Badge:       "Best for Resale",
				Title:       "Full Package",
				Price:       279.99,
				Description: "Recommended for those selling their vehicle",
				Features: []string{
					"Hand wash and dry",
					"Spot shampoo interior",
					"De-grease engine and dress",
					"Spray wax or ceramic spray wax",
				},
				DurationMinutes: 240,
			},
			{
				ID:          "diamond",
				Badge:       "Ultimate",
				Title:       "Diamond Package",
				Price:       359.99,
				Description: "Our most comprehensive detailing service",
				Features: []string{
					"Vacuum and shampoo carpets and seats",
					"Steam clean interior where needed",
					"Condition all leather and vinyl",
					"Paint polish with wax, sealant or ceramic",
				},
				DurationMinutes: 300,
			},
		},
		About: About{
			Heading:    "About Gloss & Go",
			Paragraph1: "With years of experience in automotive detailing, Gloss & Go brings professional mobile service directly to your location.",
			Paragraph2: "We use premium products and proven techniques to deliver results that exceed expectations, from the convenience of your driveway or office parking lot.",
		},
		Contact: Contact{
			Phone:         "425 555 0175",
			Email:         "bookings@glossandgo.example",
			WeekdayHours:  "Mon-Fri: 8AM-6PM",
			SaturdayHours: "Sat: 8AM-4PM",
			SundayHours:   "Sun: By Appointment",
		},
	}
}
