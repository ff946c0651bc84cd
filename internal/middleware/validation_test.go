package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Test struct mirroring the create product payload shape
type testCreateRequest struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description" validate:"required"`
	ManufacturerID int64  `json:"manufacturer_id" validate:"required"`
	BatchNumber    string `json:"batch_number" validate:"required"`
}

func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeName bool, includeDescription bool, includeManufacturer bool, includeBatch bool) bool {
			// Create request with some fields missing
			reqMap := make(map[string]interface{})

			if includeName {
				reqMap["name"] = "Dark 85%"
			}
			if includeDescription {
				reqMap["description"] = "Single origin"
			}
			if includeManufacturer {
				reqMap["manufacturer_id"] = 3
			}
			if includeBatch {
				reqMap["batch_number"] = "B-2024-01"
			}

			// If all fields are present, this should pass validation
			allFieldsPresent := includeName && includeDescription && includeManufacturer && includeBatch

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var testReq testCreateRequest
			err := DecodeAndValidate(req, &testReq)

			if allFieldsPresent {
				// Should pass validation
				return err == nil
			}

			// Should fail validation, and be recognizable as such
			return err != nil && IsValidationError(err)
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Zero values count as missing: the presence check is a truthiness check.
func TestZeroValuesFailValidation(t *testing.T) {
	cases := []string{
		`{"name":"","description":"d","manufacturer_id":1,"batch_number":"b"}`,
		`{"name":"n","description":"","manufacturer_id":1,"batch_number":"b"}`,
		`{"name":"n","description":"d","manufacturer_id":0,"batch_number":"b"}`,
		`{"name":"n","description":"d","manufacturer_id":1,"batch_number":""}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest("POST", "/api/products", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")

		var testReq testCreateRequest
		err := DecodeAndValidate(req, &testReq)
		if err == nil {
			t.Errorf("expected validation failure for body %s", body)
			continue
		}
		if !IsValidationError(err) {
			t.Errorf("expected a validation error for body %s, got %v", body, err)
		}
	}
}

func TestDecodeErrorIsNotValidationError(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	var testReq testCreateRequest
	err := DecodeAndValidate(req, &testReq)
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if IsValidationError(err) {
		t.Error("decode errors must not be classified as validation errors")
	}
}
