package gst

// StateRegistry maps the 2-digit GST state codes to state names. It is
// immutable after construction and safe for concurrent access. Codes are
// compared for equality only (place-of-supply decisions), never arithmetic.
type StateRegistry struct {
	byCode map[string]string
}

// NewStateRegistry builds the registry with the full GSTN code list.
func NewStateRegistry() *StateRegistry {
	return &StateRegistry{byCode: map[string]string{
		"01": "Jammu and Kashmir",
		"02": "Himachal Pradesh",
		"03": "Punjab",
		"04": "Chandigarh",
		"05": "Uttarakhand",
		"06": "Haryana",
		"07": "Delhi",
		"08": "Rajasthan",
		"09": "Uttar Pradesh",
		"10": "Bihar",
		"11": "Sikkim",
		"12": "Arunachal Pradesh",
		"13": "Nagaland",
		"14": "Manipur",
		"15": "Mizoram",
		"16": "Tripura",
		"17": "Meghalaya",
		"18": "Assam",
		"19": "West Bengal",
		"20": "Jharkhand",
		"21": "Odisha",
		"22": "Chhattisgarh",
		"23": "Madhya Pradesh",
		"24": "Gujarat",
		"26": "Dadra and Nagar Haveli and Daman and Diu",
		"27": "Maharashtra",
		"28": "Andhra Pradesh (old)",
		"29": "Karnataka",
		"30": "Goa",
		"31": "Lakshadweep",
		"32": "Kerala",
		"33": "Tamil Nadu",
		"34": "Puducherry",
		"35": "Andaman and Nicobar Islands",
		"36": "Telangana",
		"37": "Andhra Pradesh",
		"38": "Ladakh",
		"97": "Other Territory",
	}}
}

// Exists reports whether code is a known state code.
func (r *StateRegistry) Exists(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// Name returns the state name for code, or "" if unknown.
func (r *StateRegistry) Name(code string) string {
	return r.byCode[code]
}

// Codes returns all known state codes. Order is unspecified.
func (r *StateRegistry) Codes() []string {
	out := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		out = append(out, c)
	}
	return out
}
