package validation

import (
	"testing"

	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignUp() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		FullName:        "Jane Smith",
		Email:           "jane@example.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		TermsAccepted:   true,
		Role:            "shop-owner",
	}
}

func validShopForm() *usecase.RegisterShopInput {
	return &usecase.RegisterShopInput{
		Name:           "Fashion Hub",
		Industry:       "Apparel",
		City:           "Nairobi",
		Mall:           "Two Rivers Mall",
		ShopNumber:     "A12",
		WhatsappNumber: "+254 799374937",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	return vErr.Fields()
}

func TestStruct_ValidInputsPass(t *testing.T) {
	assert.NoError(t, Struct(validSignUp()))
	assert.NoError(t, Struct(validShopForm()))
}

func TestStruct_SignUpFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SignUpInput)
		field   string
		message string
	}{
		{
			name:    "short full name",
			mutate:  func(in *usecase.SignUpInput) { in.FullName = "J" },
			field:   "full_name",
			message: "Must be at least 2 characters",
		},
		{
			name:    "invalid email",
			mutate:  func(in *usecase.SignUpInput) { in.Email = "not-an-email" },
			field:   "email",
			message: "Please enter a valid email address",
		},
		{
			name:    "short password",
			mutate:  func(in *usecase.SignUpInput) { in.Password, in.ConfirmPassword = "short", "short" },
			field:   "password",
			message: "Must be at least 8 characters",
		},
		{
			name:    "confirmation mismatch",
			mutate:  func(in *usecase.SignUpInput) { in.ConfirmPassword = "different-pass" },
			field:   "confirm_password",
			message: "Passwords do not match",
		},
		{
			name:    "terms not accepted",
			mutate:  func(in *usecase.SignUpInput) { in.TermsAccepted = false },
			field:   "terms_accepted",
			message: "You must accept the terms and conditions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSignUp()
			tt.mutate(input)

			fields := fieldErrors(t, Struct(input))
			require.Len(t, fields, 1, "exactly the mutated field must be keyed")
			require.Contains(t, fields, tt.field)
			if tt.message != "" {
				assert.Equal(t, tt.message, fields[tt.field])
			}
		})
	}
}

func TestStruct_ShopFormEachMissingFieldKeyedIndependently(t *testing.T) {
	mutations := map[string]func(*usecase.RegisterShopInput){
		"name":            func(in *usecase.RegisterShopInput) { in.Name = "" },
		"industry":        func(in *usecase.RegisterShopInput) { in.Industry = "   " },
		"city":            func(in *usecase.RegisterShopInput) { in.City = "" },
		"mall":            func(in *usecase.RegisterShopInput) { in.Mall = "" },
		"shop_number":     func(in *usecase.RegisterShopInput) { in.ShopNumber = "\t" },
		"whatsapp_number": func(in *usecase.RegisterShopInput) { in.WhatsappNumber = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			input := validShopForm()
			mutate(input)

			fields := fieldErrors(t, Struct(input))
			require.Len(t, fields, 1)
			assert.Equal(t, "This field is required", fields[field])
		})
	}
}

func TestStruct_MultipleFailuresReportedTogether(t *testing.T) {
	input := validShopForm()
	input.Name = ""
	input.City = " "
	input.WhatsappNumber = ""

	fields := fieldErrors(t, Struct(input))
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "whatsapp_number")
}

func TestStruct_LogoIsOptional(t *testing.T) {
	input := validShopForm()
	input.Logo = ""
	assert.NoError(t, Struct(input))
}
