package update_form_session

// UpdateFieldRequest HTTP request model. Field is a "section.name"
// path; Values is filled only for the multi-valued hall selection.
type UpdateFieldRequest struct {
	Field  string   `json:"field"`
	Value  string   `json:"value"`
	Values []string `json:"values,omitempty"`
}
