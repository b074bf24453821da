package requests

// UpdateSettingRequest represents a setting upsert request. An empty value
// is a valid setting value.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}
