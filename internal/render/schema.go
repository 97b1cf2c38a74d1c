package render

func organizationJSONLD(s Site) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     s.Name,
		"url":      s.BaseURL,
	}
}

func websiteJSONLD(s Site) map[string]any {
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       s.Name,
		"url":        s.BaseURL,
		"inLanguage": "en-US",
	}
}
