package booksv2repo

import "errors"

var ErrNotFound = errors.New("not found")
