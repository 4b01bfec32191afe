package catalog

// DefaultImage is used when a product is saved without an image URL.
const DefaultImage = "https://placehold.co/400x400.png"

// DefaultLowStockThreshold applies to newly created products that do not set
// their own threshold.
const DefaultLowStockThreshold = 10

// SeedProducts is the first-run catalog, persisted on the first load when no
// blob exists yet.
func SeedProducts() []Product {
	return []Product{
		{
			ID:                "prod-001",
			Name:              "Sérum Renovador Nocturno",
			Description:       "Un sérum potente que trabaja mientras duermes para revelar una piel más joven y radiante.",
			Price:             75.0,
			Stock:             25,
			LowStockThreshold: 10,
			Image:             DefaultImage,
			Category:          CategorySkincare,
		},
		{
			ID:                "prod-002",
			Name:              "Crema Hidratante de Día",
			Description:       "Hidratación profunda y protección contra los agresores ambientales durante todo el día.",
			Price:             50.0,
			Stock:             8,
			LowStockThreshold: 10,
			Image:             DefaultImage,
			Category:          CategorySkincare,
		},
		{
			ID:                "prod-003",
			Name:              "Limpiador Facial Suave",
			Description:       "Elimina impurezas sin resecar la piel, dejándola fresca y suave.",
			Price:             30.0,
			Stock:             50,
			LowStockThreshold: 15,
			Image:             DefaultImage,
			Category:          CategorySkincare,
		},
		{
			ID:                "prod-004",
			Name:              "Mascarilla de Arcilla Purificante",
			Description:       "Desintoxica y minimiza los poros para una tez clara y sin brillos.",
			Price:             45.0,
			Stock:             12,
			LowStockThreshold: 10,
			Image:             DefaultImage,
			Category:          CategorySkincare,
		},
		{
			ID:                "prod-005",
			Name:              "Contorno de Ojos Iluminador",
			Description:       "Reduce ojeras y líneas de expresión para una mirada más despierta y juvenil.",
			Price:             60.0,
			Stock:             5,
			LowStockThreshold: 5,
			Image:             DefaultImage,
			Category:          CategorySkincare,
		},
	}
}
