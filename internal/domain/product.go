package domain

// Product represents a chocolate product in the catalog. The id is assigned
// by the database on insert; the remaining fields are always populated.
type Product struct {
	ProductID      int64  `json:"product_id" db:"product_id"`
	Name           string `json:"name" db:"name"`
	Description    string `json:"description" db:"description"`
	ManufacturerID int64  `json:"manufacturer_id" db:"manufacturer_id"`
	BatchNumber    string `json:"batch_number" db:"batch_number"`
}
