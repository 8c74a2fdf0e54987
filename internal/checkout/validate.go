package checkout

import (
	"regexp"
	"strings"

	"saree-store/internal/models"
)

// The same loose shapes the storefront form used. The email check is a
// substring match, not a full RFC parse.
var (
	emailRe   = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	cardRe    = regexp.MustCompile(`^\d{16}$`)
	expiryRe  = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe     = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateShipping checks the shipping step. An empty map means the step
// may advance; otherwise the map is keyed by form field name.
func ValidateShipping(d models.ShippingDetails) map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		"fullName": d.FullName,
		"email":    d.Email,
		"phone":    d.Phone,
		"address":  d.Address,
		"city":     d.City,
		"state":    d.State,
		"pincode":  d.Pincode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "This field is required"
		}
	}

	if d.Email != "" && !emailRe.MatchString(d.Email) {
		errs["email"] = "Invalid email address"
	}
	if d.Phone != "" && !phoneRe.MatchString(d.Phone) {
		errs["phone"] = "Phone number must be 10 digits"
	}
	if d.Pincode != "" && !pincodeRe.MatchString(d.Pincode) {
		errs["pincode"] = "Pincode must be 6 digits"
	}

	return errs
}

// ValidatePayment checks the payment step. Card details are only required
// and validated for the card method; upi and cod pass as-is.
func ValidatePayment(d PaymentDetails) map[string]string {
	errs := make(map[string]string)

	switch d.Method {
	case "card":
		if d.CardNumber == "" {
			errs["cardNumber"] = "Card number is required"
		} else if !cardRe.MatchString(strings.ReplaceAll(d.CardNumber, " ", "")) {
			errs["cardNumber"] = "Card number must be 16 digits"
		}

		if d.CardExpiry == "" {
			errs["cardExpiry"] = "Expiry date is required"
		} else if !expiryRe.MatchString(d.CardExpiry) {
			errs["cardExpiry"] = "Use MM/YY format"
		}

		if d.CardCVV == "" {
			errs["cardCvv"] = "CVV is required"
		} else if !cvvRe.MatchString(d.CardCVV) {
			errs["cardCvv"] = "CVV must be 3 or 4 digits"
		}
	case "upi", "cod":
		// No extra fields to check.
	default:
		errs["paymentMethod"] = "Select a payment method"
	}

	return errs
}
