package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saree-store/internal/models"
)

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func TestValidateShippingAccepts(t *testing.T) {
	assert.Empty(t, ValidateShipping(validShipping()))
}

func TestValidateShippingRequiredFields(t *testing.T) {
	errs := ValidateShipping(models.ShippingDetails{})

	for _, field := range []string{"fullName", "email", "phone", "address", "city", "state", "pincode"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateShippingFieldShapes(t *testing.T) {
	d := validShipping()
	d.Phone = "12345"
	errs := ValidateShipping(d)
	assert.Equal(t, "Phone number must be 10 digits", errs["phone"])

	d = validShipping()
	d.Email = "not-an-email"
	errs = ValidateShipping(d)
	assert.Equal(t, "Invalid email address", errs["email"])

	d = validShipping()
	d.Pincode = "5600012"
	errs = ValidateShipping(d)
	assert.Equal(t, "Pincode must be 6 digits", errs["pincode"])

	// One bad field never blocks the others from reporting.
	d = validShipping()
	d.Phone = "abc"
	d.Pincode = "12"
	errs = ValidateShipping(d)
	assert.Len(t, errs, 2)
}

func TestValidatePaymentCard(t *testing.T) {
	ok := PaymentDetails{
		Method:     "card",
		CardNumber: "4111 1111 1111 1111", // spaces are stripped
		CardExpiry: "09/27",
		CardCVV:    "123",
	}
	assert.Empty(t, ValidatePayment(ok))

	bad := ok
	bad.CardNumber = "4111"
	assert.Equal(t, "Card number must be 16 digits", ValidatePayment(bad)["cardNumber"])

	bad = ok
	bad.CardExpiry = "13/27"
	assert.Equal(t, "Use MM/YY format", ValidatePayment(bad)["cardExpiry"])

	bad = ok
	bad.CardExpiry = "9/27"
	assert.Equal(t, "Use MM/YY format", ValidatePayment(bad)["cardExpiry"])

	bad = ok
	bad.CardCVV = "12"
	assert.Equal(t, "CVV must be 3 or 4 digits", ValidatePayment(bad)["cardCvv"])

	assert.NotEmpty(t, ValidatePayment(PaymentDetails{Method: "card"}))
}

func TestValidatePaymentNonCardMethods(t *testing.T) {
	// cod and upi carry no required fields; empty card details are fine.
	assert.Empty(t, ValidatePayment(PaymentDetails{Method: "cod"}))
	assert.Empty(t, ValidatePayment(PaymentDetails{Method: "upi"}))
	assert.Contains(t, ValidatePayment(PaymentDetails{Method: "cheque"}), "paymentMethod")
	assert.Contains(t, ValidatePayment(PaymentDetails{}), "paymentMethod")
}
