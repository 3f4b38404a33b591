package entity

// Plan is a marketed product line shown on the plans page. The catalog is
// static; prices are starting-at figures, not quotes.
type Plan struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	StartingAt  int      `json:"starting_at"` // dollars per month
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

func PlanCatalog() []Plan {
	return []Plan{
		{
			Name:        "Auto Insurance",
			Type:        "auto",
			StartingAt:  89,
			Description: "Coverage that keeps you moving, from liability to full comprehensive.",
			Features:    []string{"Liability Coverage", "Collision Protection", "Roadside Assistance", "Rental Reimbursement"},
		},
		{
			Name:        "Home Insurance",
			Type:        "home",
			StartingAt:  125,
			Description: "Protect your biggest investment against damage, theft, and liability.",
			Features:    []string{"Dwelling Coverage", "Personal Property", "Liability Protection", "Additional Living Expenses"},
		},
		{
			Name:        "Life Insurance",
			Type:        "life",
			StartingAt:  45,
			Description: "Term life coverage that secures your family's financial future.",
			Features:    []string{"Term & Whole Life", "No Medical Exam Options", "Level Premiums", "Quick Approval"},
		},
		{
			Name:        "Business Insurance",
			Type:        "business",
			StartingAt:  199,
			Description: "Commercial coverage built around your livelihood and assets.",
			Features:    []string{"General Liability", "Professional Liability", "Commercial Property", "Workers Comp Available"},
		},
	}
}
