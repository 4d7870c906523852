package model

type KeySpec struct {
	Tonic string `json:"tonic" yaml:"tonic"`
	Scale string `json:"scale" yaml:"scale"`
}

type TransformRequestBody struct {
	Key    *KeySpec `json:"key,omitempty" yaml:"key,omitempty"`
	Points []Point  `json:"points" yaml:"points"`
	Steps  []any    `json:"steps" yaml:"steps"`
}

type TransformResponse struct {
	Points []Point `json:"points"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
