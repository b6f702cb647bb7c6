package memory

import (
	"time"

	"github.com/google/uuid"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/service"
)

// DemoPassword is the plaintext password shared by all seeded demo accounts.
// It is hashed at seed time so the store never holds a hard-coded hash.
const DemoPassword = "password123"

type seedShop struct {
	name       string
	owner      string
	ownerEmail string
	industry   string
	city       string
	mall       string
	shopNumber string
	phone      string
	status     entity.ShopStatus
}

var demoShops = []seedShop{
	{"Fashion Hub", "Jane Smith", "jane.smith@example.com", "Apparel", "Nairobi", "Central Mall", "A12", "+254700111222", entity.ShopStatusActive},
	{"Tech World", "John Doe", "john.doe@example.com", "Electronics", "Nairobi", "Westside Mall", "B07", "+254700333444", entity.ShopStatusActive},
	{"Beauty Palace", "Mary Wanjiku", "mary.wanjiku@example.com", "Cosmetics", "Mombasa", "Ocean Plaza", "C03", "+254700555666", entity.ShopStatusActive},
	{"Shoe Haven", "David Kamau", "david.kamau@example.com", "Footwear", "Nakuru", "Lakeview Mall", "D21", "+254700777888", entity.ShopStatusInactive},
	{"Kitchen Plus", "Sarah Ouma", "sarah.ouma@example.com", "Homeware", "Kisumu", "Mega City", "E09", "+254700999000", entity.ShopStatusPending},
}

// Seed fills an empty store with the demo dataset: an admin account, five
// shop owners with their shops across the lifecycle states, and a billing
// history for Fashion Hub (two settled cycles plus the current pending one).
// All account passwords are DemoPassword, hashed through the given hasher.
// Dates are anchored to the wall clock so the active demo shops are not
// already overdue at startup and the first sweep leaves them alone.
func Seed(store *Store, hasher service.PasswordHasher) error {
	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	// Accounts opened two billing cycles ago; the open cycle is due in two
	// weeks, and the inactive shop's cycle lapsed ten days ago.
	seededAt := now.AddDate(0, -2, 0)
	currentDue := now.AddDate(0, 0, 14)
	lapsedDue := now.AddDate(0, 0, -10)

	store.mu.Lock()
	defer store.mu.Unlock()

	store.users = append(store.users, &entity.User{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        "admin@sokoo.example",
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		PasswordHash: hash,
		CreatedAt:    seededAt,
		UpdatedAt:    seededAt,
	})

	for _, s := range demoShops {
		owner := &entity.User{
			ID:           uuid.New(),
			Name:         s.owner,
			Email:        s.ownerEmail,
			Role:         entity.RoleShopOwner,
			Status:       entity.UserStatusActive,
			PasswordHash: hash,
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		}
		store.users = append(store.users, owner)

		shop := &entity.Shop{
			ID:         uuid.New(),
			Name:       s.name,
			OwnerID:    owner.ID,
			OwnerName:  s.owner,
			Industry:   s.industry,
			City:       s.city,
			Mall:       s.mall,
			ShopNumber: s.shopNumber,
			Phone:      s.phone,
			Status:     s.status,
			CreatedAt:  seededAt,
			UpdatedAt:  seededAt,
		}
		store.shops = append(store.shops, shop)

		if s.status == entity.ShopStatusPending {
			// Billing starts at approval, so a pending shop has no cycles yet.
			continue
		}

		if s.name == "Fashion Hub" {
			store.payments = append(store.payments, fashionHubHistory(shop.ID, currentDue)...)
			continue
		}

		due := currentDue
		if s.status == entity.ShopStatusInactive {
			due = lapsedDue
		}

		store.payments = append(store.payments, &entity.Payment{
			ID:        uuid.New(),
			ShopID:    shop.ID,
			Amount:    5000,
			Currency:  "KES",
			Status:    entity.PaymentStatusPending,
			DueDate:   due,
			Notes:     "Monthly subscription fee",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		})
	}

	return nil
}

// fashionHubHistory builds the showcase billing history: two settled cycles
// (bank transfer, then credit card) plus the current still-pending one.
func fashionHubHistory(shopID uuid.UUID, currentDue time.Time) []*entity.Payment {
	firstDue := currentDue.AddDate(0, -2, 0)
	secondDue := currentDue.AddDate(0, -1, 0)

	return []*entity.Payment{
		{
			ID:             uuid.New(),
			ShopID:         shopID,
			Amount:         5000,
			Currency:       "KES",
			Status:         entity.PaymentStatusPaid,
			DueDate:        firstDue,
			PaymentDate:    firstDue.AddDate(0, 0, -1),
			PaymentMethod:  "Bank Transfer",
			TransactionRef: "TX0987654321",
			Notes:          "Monthly subscription fee",
			CreatedAt:      firstDue.AddDate(0, -1, 0),
			UpdatedAt:      firstDue.AddDate(0, 0, -1),
		},
		{
			ID:             uuid.New(),
			ShopID:         shopID,
			Amount:         5000,
			Currency:       "KES",
			Status:         entity.PaymentStatusPaid,
			DueDate:        secondDue,
			PaymentDate:    secondDue,
			PaymentMethod:  "Credit Card",
			TransactionRef: "TX1234567890",
			Notes:          "Monthly subscription fee",
			CreatedAt:      firstDue.AddDate(0, 0, -1),
			UpdatedAt:      secondDue,
		},
		{
			ID:        uuid.New(),
			ShopID:    shopID,
			Amount:    5000,
			Currency:  "KES",
			Status:    entity.PaymentStatusPending,
			DueDate:   currentDue,
			Notes:     "Monthly subscription fee",
			CreatedAt: secondDue,
			UpdatedAt: secondDue,
		},
	}
}
