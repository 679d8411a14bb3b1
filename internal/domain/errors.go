package domain

import "errors"

var (
	ErrCatalogLoad        = errors.New("catalog load failed")
	ErrEmptyCatalog       = errors.New("catalog is empty")
	ErrInvalidDrawRequest = errors.New("draw count exceeds catalog size")
)
