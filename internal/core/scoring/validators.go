package scoring

// RuleValidator checks a terminal result mapping against the business rules
// of one classification. Any structural failure fails the whole check.
type RuleValidator func(result map[string]any) bool

var validators = map[string]RuleValidator{
	"payslip": validatePayslip,
	"invoice": validateInvoice,
}

// RegisterValidator adds or replaces the business-rule validator for a
// classification.
func RegisterValidator(docType string, v RuleValidator) {
	validators[docType] = v
}

func validatorFor(docType string) (RuleValidator, bool) {
	v, ok := validators[docType]
	return v, ok
}

func validatePayslip(result map[string]any) bool {
	gross, ok := asFloat(result["gross_pay"])
	if !ok || gross < 0 {
		return false
	}
	net, ok := asFloat(result["net_pay"])
	if !ok || net < 0 {
		return false
	}
	tax, ok := asFloat(result["tax_withheld"])
	if !ok || tax < 0 {
		return false
	}
	if gross < net {
		return false
	}

	if raw, ok := result["superannuation"]; ok && raw != nil {
		super, ok := asFloat(raw)
		if !ok || super < 0 {
			return false
		}
	}

	start, ok := parseDate(result["pay_period_start"])
	if !ok {
		return false
	}
	end, ok := parseDate(result["pay_period_end"])
	if !ok {
		return false
	}
	if start.After(end) {
		return false
	}

	return confidenceInRange(result["confidence"])
}

func validateInvoice(result map[string]any) bool {
	total, ok := asFloat(result["total_amount"])
	if !ok || total <= 0 {
		return false
	}

	if raw, ok := result["gst_amount"]; ok && raw != nil {
		gst, ok := asFloat(raw)
		if !ok || gst < 0 {
			return false
		}
	}

	if _, ok := parseDate(result["invoice_date"]); !ok {
		return false
	}
	if raw, ok := result["due_date"]; ok && raw != nil {
		if _, ok := parseDate(raw); !ok {
			return false
		}
	}

	return confidenceInRange(result["confidence"])
}

func confidenceInRange(v any) bool {
	confidence, ok := asFloat(v)
	return ok && confidence >= 0 && confidence <= 1
}
