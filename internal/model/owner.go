package model

import (
	"fmt"
	"strings"
)

// Owner records a capital contribution. Owners are plain data entries and
// never enter the ledger derivation.
type Owner struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (o Owner) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("owner name is required")
	}
	if o.Amount < 0 {
		return fmt.Errorf("owner capital cannot be negative")
	}
	return nil
}
