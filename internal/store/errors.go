package store

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrOwnerNotFound       = errors.New("owner not found")
	ErrDuplicateID         = errors.New("record with this id already exists")
)
