package postgres

import (
	"time"

	"sokoo/internal/domain/entity"
	"sokoo/internal/infra/persistence/model"
)

func fromShopDomain(shop *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:         shop.ID,
		Name:       shop.Name,
		OwnerID:    shop.OwnerID,
		OwnerName:  shop.OwnerName,
		Industry:   shop.Industry,
		City:       shop.City,
		Mall:       shop.Mall,
		ShopNumber: shop.ShopNumber,
		Phone:      shop.Phone,
		Logo:       shop.Logo,
		Status:     shop.Status.String(),
		CreatedAt:  shop.CreatedAt,
		UpdatedAt:  shop.UpdatedAt,
	}
}

func toShopDomain(shopM *model.ShopModel) *entity.Shop {
	return &entity.Shop{
		ID:         shopM.ID,
		Name:       shopM.Name,
		OwnerID:    shopM.OwnerID,
		OwnerName:  shopM.OwnerName,
		Industry:   shopM.Industry,
		City:       shopM.City,
		Mall:       shopM.Mall,
		ShopNumber: shopM.ShopNumber,
		Phone:      shopM.Phone,
		Logo:       shopM.Logo,
		Status:     entity.ShopStatus(shopM.Status),
		CreatedAt:  shopM.CreatedAt,
		UpdatedAt:  shopM.UpdatedAt,
	}
}

func fromPaymentDomain(payment *entity.Payment) *model.PaymentModel {
	var paidAt *time.Time
	if !payment.PaymentDate.IsZero() {
		paidAt = &payment.PaymentDate
	}

	return &model.PaymentModel{
		ID:             payment.ID,
		ShopID:         payment.ShopID,
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		Status:         payment.Status.String(),
		DueDate:        payment.DueDate,
		PaymentDate:    paidAt,
		PaymentMethod:  payment.PaymentMethod,
		TransactionRef: payment.TransactionRef,
		Notes:          payment.Notes,
		CreatedAt:      payment.CreatedAt,
		UpdatedAt:      payment.UpdatedAt,
	}
}

func toPaymentDomain(paymentM *model.PaymentModel) *entity.Payment {
	payment := &entity.Payment{
		ID:             paymentM.ID,
		ShopID:         paymentM.ShopID,
		Amount:         paymentM.Amount,
		Currency:       paymentM.Currency,
		Status:         entity.PaymentStatus(paymentM.Status),
		DueDate:        paymentM.DueDate,
		PaymentMethod:  paymentM.PaymentMethod,
		TransactionRef: paymentM.TransactionRef,
		Notes:          paymentM.Notes,
		CreatedAt:      paymentM.CreatedAt,
		UpdatedAt:      paymentM.UpdatedAt,
	}
	if paymentM.PaymentDate != nil {
		payment.PaymentDate = *paymentM.PaymentDate
	}

	return payment
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role.String(),
		Status:       user.Status.String(),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		Name:         userM.Name,
		Email:        userM.Email,
		Role:         entity.Role(userM.Role),
		Status:       entity.UserStatus(userM.Status),
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func fromReminderDomain(reminder *entity.Reminder) *model.ReminderModel {
	return &model.ReminderModel{
		ID:        reminder.ID,
		ShopID:    reminder.ShopID,
		PaymentID: reminder.PaymentID,
		Channel:   reminder.Channel,
		Status:    reminder.Status.String(),
		SentAt:    reminder.SentAt,
	}
}

func toReminderDomain(reminderM *model.ReminderModel) *entity.Reminder {
	return &entity.Reminder{
		ID:        reminderM.ID,
		ShopID:    reminderM.ShopID,
		PaymentID: reminderM.PaymentID,
		Channel:   reminderM.Channel,
		Status:    entity.ReminderStatus(reminderM.Status),
		SentAt:    reminderM.SentAt,
	}
}
