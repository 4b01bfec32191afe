package directory

import "golang.org/x/crypto/bcrypt"

const defaultAvatar = "https://placehold.co/100x100.png"

// SeedCustomers is the first-run customer list, including the walk-in
// placeholder customer used for counter sales.
func SeedCustomers() []Customer {
	return []Customer{
		{ID: "cust-001", Name: "Ana Pérez", Email: "ana.perez@example.com", Phone: "+34 600 123 456",
			AvatarURL: defaultAvatar, LastOrderDate: "2024-05-15", TotalSpent: 125.0},
		{ID: "cust-002", Name: "Carlos García", Email: "carlos.garcia@example.com", Phone: "+34 601 234 567",
			AvatarURL: defaultAvatar, LastOrderDate: "2024-05-20", TotalSpent: 75.0},
		{ID: "cust-003", Name: "Lucía Martínez", Email: "lucia.martinez@example.com", Phone: "+34 602 345 678",
			AvatarURL: defaultAvatar, LastOrderDate: "2024-04-30", TotalSpent: 210.0},
		{ID: "cust-004", Name: "Javier Rodríguez", Email: "javier.r@example.com", Phone: "+34 603 456 789",
			AvatarURL: defaultAvatar, LastOrderDate: "2024-05-22", TotalSpent: 45.0},
		{ID: "cust-005", Name: "Cliente Mostrador", Email: "mostrador@example.com", Phone: "000000000",
			AvatarURL: defaultAvatar, LastOrderDate: "", TotalSpent: 0},
	}
}

// SeedSellers is the first-run seller list.
func SeedSellers() []Party {
	return []Party{
		{ID: "seller-1", Name: "Vendedor 1", PasswordHash: mustHash("password123")},
		{ID: "seller-2", Name: "Vendedor 2", PasswordHash: mustHash("password456")},
	}
}

// SeedCashiers is the first-run cashier list.
func SeedCashiers() []Party {
	return []Party{
		{ID: "cashier-1", Name: "Cajero 1", PasswordHash: mustHash("password123")},
		{ID: "cashier-2", Name: "Cajero 2", PasswordHash: mustHash("password456")},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
