package orders

const defaultAvatar = "https://placehold.co/100x100.png"

// SeedOrders is the first-run order book, persisted when no blob exists yet.
func SeedOrders() []Order {
	return []Order{
		{
			ID:             "ord-001",
			CustomerName:   "Ana Pérez",
			CustomerAvatar: defaultAvatar,
			Date:           "2024-05-15",
			Status:         StatusEntregado,
			Items: []Item{
				{ProductID: "prod-001", ProductName: "Sérum Renovador Nocturno", Quantity: 1, Price: 75.0},
				{ProductID: "prod-003", ProductName: "Limpiador Facial Suave", Quantity: 1, Price: 30.0},
			},
			Total: 105.0,
		},
		{
			ID:             "ord-002",
			CustomerName:   "Carlos García",
			CustomerAvatar: defaultAvatar,
			Date:           "2024-05-20",
			Status:         StatusEnviado,
			Items: []Item{
				{ProductID: "prod-001", ProductName: "Sérum Renovador Nocturno", Quantity: 1, Price: 75.0},
			},
			Total: 75.0,
		},
		{
			ID:             "ord-003",
			CustomerName:   "Javier Rodríguez",
			CustomerAvatar: defaultAvatar,
			Date:           "2024-05-22",
			Status:         StatusPendiente,
			Items: []Item{
				{ProductID: "prod-004", ProductName: "Mascarilla de Arcilla Purificante", Quantity: 1, Price: 45.0},
			},
			Total: 45.0,
		},
		{
			ID:             "ord-004",
			CustomerName:   "Lucía Martínez",
			CustomerAvatar: defaultAvatar,
			Date:           "2024-05-23",
			Status:         StatusPendiente,
			Items: []Item{
				{ProductID: "prod-002", ProductName: "Crema Hidratante de Día", Quantity: 1, Price: 50.0},
				{ProductID: "prod-005", ProductName: "Contorno de Ojos Iluminador", Quantity: 1, Price: 60.0},
			},
			Total: 110.0,
		},
		{
			ID:             "ord-005",
			CustomerName:   "Ana Pérez",
			CustomerAvatar: defaultAvatar,
			Date:           "2024-05-25",
			Status:         StatusCancelado,
			Items: []Item{
				{ProductID: "prod-003", ProductName: "Limpiador Facial Suave", Quantity: 2, Price: 30.0},
			},
			Total: 60.0,
		},
	}
}
