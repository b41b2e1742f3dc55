package portfolio

// Default returns the built-in fallback document used when the backing file is
// missing or unreadable. It is the single source of truth for the document
// schema; the store never re-derives its own shape. Each call builds a fresh
// value, so callers can mutate the result freely.
func Default() *Document {
	return &Document{
		PersonalInfo: map[string]any{
			"name":  "Alex Doe",
			"title": "Software Engineer",
			"about": "Backend developer who enjoys building small, reliable services.",
			"location": map[string]any{
				"city":  "Lisbon",
				"state": "Lisboa",
			},
			"contact": map[string]any{
				"email": "alex@example.com",
				"phone": "+351 000 000 000",
			},
			"social": map[string]any{
				"github":   "https://github.com/alexdoe",
				"linkedin": "https://linkedin.com/in/alexdoe",
			},
			"resume": map[string]any{
				"url":     "/resume.pdf",
				"updated": "2025-01-01",
			},
		},
		Certifications: []Item{
			{
				"id":            1,
				"title":         "Cloud Practitioner",
				"issuer":        "AWS",
				"date":          "2024-06",
				"credential_id": "AWS-CP-0001",
			},
		},
		Projects: []Item{
			{
				"id":           1,
				"title":        "Portfolio API",
				"description":  "JSON-backed API powering this portfolio and its chat widget.",
				"technologies": []string{"Go", "Redis"},
				"image":        "/images/portfolio-api.png",
				"links": map[string]any{
					"code":      "https://github.com/alexdoe/portfolio-api",
					"live_demo": "",
				},
			},
		},
		Experience: []Item{
			{
				"id":           1,
				"position":     "Software Engineer",
				"company":      "Example Labs",
				"duration":     "2022 - Present",
				"location":     "Remote",
				"description":  "Building and operating backend services.",
				"achievements": []string{"Shipped the portfolio platform"},
				"technologies": []string{"Go", "PostgreSQL"},
			},
		},
		Skills: map[string][]string{
			"programming_languages": {"Go", "Python", "JavaScript"},
			"web_technologies":      {"HTTP", "REST", "gRPC"},
			"databases":             {"PostgreSQL", "Redis"},
			"tools":                 {"Docker", "Git"},
		},
		Metadata: Metadata{
			LastUpdated: "2025-01-01",
			Version:     "1.0",
			Status:      "active",
		},
	}
}
