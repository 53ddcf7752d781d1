package catalog

// Category groups products into the three herbal lines sold by the shop.
type Category string

const (
	CategoryRepellent Category = "Repellent"
	CategorySyrup     Category = "Syrup"
	CategoryOil       Category = "Oil"
)

// Product is an immutable catalog entry. Products are defined once at
// process start and never mutated; prices are whole rupees.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	IsNew       bool     `json:"isNew,omitempty"`
}

// Seed returns the static product catalog.
func Seed() []Product {
	return []Product{
		{
			ID:          "trace-1",
			Name:        "TRACE - Herbal Anti-Mosquito Ultra Refill",
			Category:    CategoryRepellent,
			Price:       149,
			Description: "Natural product designed to repel mosquitoes and other biting insects, made from plant-based essential oils and botanical extracts.",
			Benefits: []string{
				"Herbal & Natural Formula",
				"Safer for Health (Children & Pets friendly)",
				"Effective Mosquito Protection (Dengue, Malaria, etc.)",
				"Eco-Friendly",
				"Pleasant Natural Aroma",
			},
			Ingredients: []string{
				"Lemon Eucalyptus Oil (PMD)",
				"Basil Oil (Linalool and Eugenol)",
				"Turmeric Oil (Turmerone)",
				"Neem Oil (Azadirachtin)",
				"Turpentine Oil",
				"Dhatura Alva Oil",
			},
			IsNew: true,
		},
		{
			ID:          "gasodrill",
			Name:        "Gasodrill Syrup",
			Category:    CategorySyrup,
			Price:       120,
			Description: "Natural herbal syrup for digestion and gastric relief.",
			Benefits:    []string{"Relieves acidity", "Improves digestion", "No side effects"},
			Ingredients: []string{"Ginger", "Ajwain", "Tulsi"},
		},
		{
			ID:          "jai-gange-oil",
			Name:        "Jai Gange Hair Oil",
			Category:    CategoryOil,
			Price:       199,
			Description: "Herbal hair oil to prevent hair fall and promote growth.",
			Benefits:    []string{"Reduces hair fall", "Strengthens roots", "Cooling effect"},
			Ingredients: []string{"Bhringraj", "Amla", "Coconut Oil"},
		},
		{
			ID:          "cough-syrup",
			Name:        "Herbal Cough Syrup",
			Category:    CategorySyrup,
			Price:       95,
			Description: "Soothing relief for dry and wet cough.",
			Benefits:    []string{"Non-drowsy", "Throat soothing", "Immunity booster"},
		},
		{
			ID:          "pain-oil",
			Name:        "Orthofix Pain Relief Oil",
			Category:    CategoryOil,
			Price:       249,
			Description: "Deep penetrating oil for joint and muscle pain.",
			Benefits:    []string{"Instant relief", "Reduces inflammation", "Increases mobility"},
		},
	}
}
