package storage

import "errors"

// ErrDocumentNotFound — ни один клиент еще не присылал документ
var ErrDocumentNotFound = errors.New("document not found")
