package scoring

// FieldSet registers the exact key surface a classification may produce:
// every required key must be present, and no key outside required ∪ optional
// may appear.
type FieldSet struct {
	Required map[string]struct{}
	Optional map[string]struct{}
}

func NewFieldSet(required, optional []string) FieldSet {
	return FieldSet{
		Required: toSet(required),
		Optional: toSet(optional),
	}
}

func toSet(keys []string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// Conforms reports whether the key set of result is exactly covered by the
// field set: no missing required key, no unknown key.
func (fs FieldSet) Conforms(result map[string]any) bool {
	for k := range fs.Required {
		if _, ok := result[k]; !ok {
			return false
		}
	}
	for k := range result {
		if _, ok := fs.Required[k]; ok {
			continue
		}
		if _, ok := fs.Optional[k]; ok {
			continue
		}
		return false
	}
	return true
}

var fieldSets = map[string]FieldSet{
	"payslip": NewFieldSet(
		[]string{
			"employee_name",
			"employer_name",
			"pay_period_start",
			"pay_period_end",
			"gross_pay",
			"net_pay",
			"tax_withheld",
			"confidence",
		},
		[]string{"superannuation"},
	),
	"invoice": NewFieldSet(
		[]string{
			"supplier_name",
			"invoice_number",
			"invoice_date",
			"total_amount",
			"confidence",
		},
		[]string{"due_date", "gst_amount"},
	),
}

// RegisterFieldSet adds or replaces the field set for a classification.
// New document types register a field set and a validator; existing metric
// logic is untouched.
func RegisterFieldSet(docType string, fs FieldSet) {
	fieldSets[docType] = fs
}

// fieldSetFor resolves the field set for a classification. Unknown
// classifications get an empty set, so any non-empty result fails
// conformance.
func fieldSetFor(docType string) FieldSet {
	if fs, ok := fieldSets[docType]; ok {
		return fs
	}
	return FieldSet{}
}
