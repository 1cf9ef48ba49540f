package booksrepo

import "errors"

var ErrNotFound = errors.New("not found")
